package main

import (
	"database/sql"
	"fmt"
	"io"

	intconfig "fleet/internal/config"
	"fleet/internal/notify"
	"fleet/internal/services"
	"fleet/internal/store"
	"fleet/internal/utils"

	"go.uber.org/zap"
)

// app is everything a command needs, opened from the environment.
type app struct {
	env     intconfig.Env
	logger  *zap.Logger
	db      *sql.DB
	store   store.Store
	buffer  *notify.Buffer
	errors  *services.ErrorHandler
	closers []io.Closer
}

func newApp() (*app, error) {
	env, err := intconfig.LoadEnv()
	if err != nil {
		return nil, err
	}
	logger, err := utils.NewLogger(env.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	a := &app{env: env, logger: logger, buffer: notify.NewBuffer(env.NotificationBuffer)}

	transport, err := a.transport()
	if err != nil {
		a.close()
		return nil, err
	}
	notifier := notify.Multi{a.buffer, notify.LogNotifier{Logger: logger}}
	if transport != nil {
		notifier = append(notifier, transport)
	}
	a.errors = services.NewErrorHandler(notifier, logger)

	db, err := intconfig.OpenDB(env)
	if err != nil {
		a.close()
		return nil, err
	}
	a.db = db
	a.closers = append(a.closers, db)
	a.store = store.NewSQLStore(db, env.DBDriver)

	logger.Info("app ready",
		zap.String("db_driver", env.DBDriver),
		zap.String("notify_transport", env.NotifyTransport),
	)
	return a, nil
}

// transport opens the external notification sink selected by NOTIFY_TRANSPORT.
func (a *app) transport() (notify.Notifier, error) {
	switch a.env.NotifyTransport {
	case intconfig.TransportKafka:
		k := notify.NewKafkaNotifier(a.env.KafkaBroker, a.env.KafkaTopic, a.logger)
		a.closers = append(a.closers, k)
		return k, nil
	case intconfig.TransportRabbitMQ:
		r, err := notify.DialRabbitNotifier(a.env.RabbitMQURL, a.env.RabbitMQQueue, a.logger)
		if err != nil {
			return nil, fmt.Errorf("rabbitmq: %w", err)
		}
		a.closers = append(a.closers, r)
		return r, nil
	}
	return nil, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

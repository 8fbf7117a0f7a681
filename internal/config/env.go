package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"fleet/internal/domain"
	"fleet/internal/utils"

	"gopkg.in/yaml.v3"
)

const (
	TransportLog      = "log"
	TransportKafka    = "kafka"
	TransportRabbitMQ = "rabbitmq"
)

type Env struct {
	AppAddr            string   `yaml:"app_addr"`
	GinMode            string   `yaml:"gin_mode"`
	DBDriver           string   `yaml:"db_driver"`
	DBDSN              string   `yaml:"db_dsn"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	LogLevel           string   `yaml:"log_level"`

	NotifyTransport    string `yaml:"notify_transport"`
	KafkaBroker        string `yaml:"kafka_broker"`
	KafkaTopic         string `yaml:"kafka_topic"`
	RabbitMQURL        string `yaml:"rabbitmq_url"`
	RabbitMQQueue      string `yaml:"rabbitmq_queue"`
	ActivityLimit      int    `yaml:"activity_limit"`
	NotificationBuffer int    `yaml:"notification_buffer"`
}

func defaultEnv() Env {
	return Env{
		AppAddr:            ":8080",
		DBDriver:           "mysql",
		DBDSN:              "root:@tcp(127.0.0.1:3306)/fleet?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		LogLevel:           "info",
		NotifyTransport:    TransportLog,
		KafkaTopic:         "fleet.notifications",
		RabbitMQQueue:      "fleet.notifications",
		ActivityLimit:      5,
		NotificationBuffer: 50,
	}
}

// LoadEnv builds the configuration from defaults, the YAML file named by
// FLEET_CONFIG (optional) and finally environment variables.
func LoadEnv() (Env, error) {
	env := defaultEnv()

	if path := strings.TrimSpace(os.Getenv("FLEET_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Env{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &env); err != nil {
			return Env{}, domain.ValidationError{Field: "FLEET_CONFIG", Msg: err.Error(), Err: err}
		}
	}

	overlay(&env.AppAddr, "APP_ADDR")
	overlay(&env.GinMode, "GIN_MODE")
	overlay(&env.DBDriver, "DB_DRIVER")
	overlay(&env.DBDSN, "DB_DSN")
	overlay(&env.LogLevel, "LOG_LEVEL")
	overlay(&env.NotifyTransport, "NOTIFY_TRANSPORT")
	overlay(&env.KafkaBroker, "KAFKA_BROKER")
	overlay(&env.KafkaTopic, "KAFKA_TOPIC")
	overlay(&env.RabbitMQURL, "RABBITMQ_URL")
	overlay(&env.RabbitMQQueue, "RABBITMQ_QUEUE")
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		env.CORSAllowedOrigins = utils.SplitList(v)
	}
	if err := overlayInt(&env.ActivityLimit, "ACTIVITY_LIMIT"); err != nil {
		return Env{}, err
	}
	if err := overlayInt(&env.NotificationBuffer, "NOTIFICATION_BUFFER"); err != nil {
		return Env{}, err
	}

	if err := env.Validate(); err != nil {
		return Env{}, err
	}
	return env, nil
}

func (e Env) Validate() error {
	switch e.DBDriver {
	case "mysql", "postgres":
	default:
		return domain.ValidationError{Field: "DB_DRIVER", Msg: fmt.Sprintf("unsupported driver %q", e.DBDriver)}
	}
	switch e.NotifyTransport {
	case TransportLog:
	case TransportKafka:
		if e.KafkaBroker == "" {
			return domain.ValidationError{Field: "KAFKA_BROKER", Msg: "required when NOTIFY_TRANSPORT=kafka"}
		}
	case TransportRabbitMQ:
		if e.RabbitMQURL == "" {
			return domain.ValidationError{Field: "RABBITMQ_URL", Msg: "required when NOTIFY_TRANSPORT=rabbitmq"}
		}
	default:
		return domain.ValidationError{Field: "NOTIFY_TRANSPORT", Msg: fmt.Sprintf("unsupported transport %q", e.NotifyTransport)}
	}
	if e.ActivityLimit <= 0 {
		return domain.ValidationError{Field: "ACTIVITY_LIMIT", Msg: "must be positive"}
	}
	if e.NotificationBuffer <= 0 {
		return domain.ValidationError{Field: "NOTIFICATION_BUFFER", Msg: "must be positive"}
	}
	return nil
}

func overlay(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func overlayInt(dst *int, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return domain.ValidationError{Field: key, Msg: "must be an integer", Err: err}
	}
	*dst = n
	return nil
}

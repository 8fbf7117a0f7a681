package store

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"fleet/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

const (
	mysqlNoSuchTable   = 1146
	mysqlUnknownColumn = 1054

	pgUndefinedTable  = "42P01"
	pgUndefinedColumn = "42703"
)

// translateError converts driver failures into domain.APIError, keeping the
// vendor error code when one is available.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.APIError{Message: "data store timed out", Status: http.StatusGatewayTimeout, Code: "timeout"}
	}
	if errors.Is(err, context.Canceled) {
		return domain.APIError{Message: "request cancelled", Code: "canceled"}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		status := http.StatusBadGateway
		switch myErr.Number {
		case mysqlNoSuchTable:
			status = http.StatusNotFound
		case mysqlUnknownColumn:
			status = http.StatusBadRequest
		}
		return domain.APIError{Message: myErr.Message, Status: status, Code: strconv.Itoa(int(myErr.Number))}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		status := http.StatusBadGateway
		switch string(pqErr.Code) {
		case pgUndefinedTable:
			status = http.StatusNotFound
		case pgUndefinedColumn:
			status = http.StatusBadRequest
		}
		return domain.APIError{Message: pqErr.Message, Status: status, Code: string(pqErr.Code)}
	}

	return domain.APIError{Message: err.Error(), Status: http.StatusBadGateway, Code: "store_unavailable"}
}

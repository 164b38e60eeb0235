package check_admin

import "context"

type BookingsService interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

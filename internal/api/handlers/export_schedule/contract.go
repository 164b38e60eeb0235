package export_schedule

import "context"

type ExportScheduleUseCase interface {
	Execute(ctx context.Context, userID int64) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

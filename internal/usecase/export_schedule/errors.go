package export_schedule

import "errors"

var (
	// ErrBuildFile возвращается, когда не удалось сформировать файл расписания
	ErrBuildFile = errors.New("export_schedule: failed to build schedule file")

	// ErrSendFailed возвращается, когда файл не удалось доставить пользователю
	ErrSendFailed = errors.New("export_schedule: failed to send file")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_schedule: internal error")
)

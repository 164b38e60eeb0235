package get_calendar

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало окна позже его конца
	ErrInvalidRange = errors.New("get_calendar: start date is after end date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)

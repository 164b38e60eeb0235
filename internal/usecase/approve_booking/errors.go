package approve_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("approve_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("approve_booking: access denied")

	// ErrInvalidState возвращается при попытке одобрить заявку не в статусе ожидания
	ErrInvalidState = errors.New("approve_booking: booking is not pending")

	// ErrVenueConflict возвращается, когда повторная проверка вместимости не проходит
	ErrVenueConflict = errors.New("approve_booking: venue is already booked for these dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_booking: internal error")
)

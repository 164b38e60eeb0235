package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не администратор
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrInvalidDateRange возвращается, когда после применения патча дата начала позже даты окончания
	ErrInvalidDateRange = errors.New("update_booking: start date is after end date")

	// ErrTooManyPeople возвращается, когда новое количество людей превышает вместимость площадки
	ErrTooManyPeople = errors.New("update_booking: people count exceeds venue capacity")

	// ErrVenueConflict возвращается, когда измененная заявка конфликтует с подтвержденными бронированиями
	ErrVenueConflict = errors.New("update_booking: changes conflict with existing bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

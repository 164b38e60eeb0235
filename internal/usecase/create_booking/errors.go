package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата начала позже даты окончания
	ErrInvalidDateRange = errors.New("create_booking: start date is after end date")

	// ErrTooManyPeople возвращается, когда заявленное количество людей превышает вместимость площадки
	ErrTooManyPeople = errors.New("create_booking: people count exceeds venue capacity")

	// ErrVenueConflict возвращается, когда заявка не совместима с подтвержденными бронированиями на эти даты
	ErrVenueConflict = errors.New("create_booking: venue is already booked for these dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

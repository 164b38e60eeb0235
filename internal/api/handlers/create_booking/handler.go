package create_booking

import (
	"errors"
	"net/http"

	"github.com/avlasov/venue-booking-service/internal/api/handlers"
	"github.com/avlasov/venue-booking-service/internal/api/middleware"
	"github.com/avlasov/venue-booking-service/internal/service/bookings/models"
	createBooking "github.com/avlasov/venue-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные заявки"
	msgInvalidDateRange   = "дата начала позже даты окончания"
	msgTooManyPeople      = "количество участников превышает вместимость площадки"
	msgVenueConflict      = "площадка занята на выбранные даты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrTooManyPeople):
			h.logger.Warn("POST /bookings - Too many people: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgTooManyPeople)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrVenueConflict):
			h.logger.Warn("POST /bookings - Venue conflict: user_id=%d", userID)
			handlers.RespondConflict(w, msgVenueConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d", booking.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(booking))
}

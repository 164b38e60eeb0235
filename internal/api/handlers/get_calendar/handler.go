package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/avlasov/venue-booking-service/internal/api/handlers"
	"github.com/avlasov/venue-booking-service/internal/domain"
	getCalendar "github.com/avlasov/venue-booking-service/internal/usecase/get_calendar"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "дата начала позже даты окончания"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getCalendar.Request{}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /bookings/calendar - Invalid start_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /bookings/calendar - Invalid end_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	days, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidRange):
			h.logger.Warn("GET /bookings/calendar - Invalid range")
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /bookings/calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/calendar - Returned %d days", len(days))
	handlers.RespondJSON(w, http.StatusOK, days)
}

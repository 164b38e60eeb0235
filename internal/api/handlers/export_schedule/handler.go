package export_schedule

import (
	"errors"
	"net/http"

	"github.com/avlasov/venue-booking-service/internal/api/handlers"
	"github.com/avlasov/venue-booking-service/internal/api/middleware"
	exportSchedule "github.com/avlasov/venue-booking-service/internal/usecase/export_schedule"
)

const msgSendFailed = "не удалось отправить файл в Telegram"

// ExportResponse HTTP response model
type ExportResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Handler struct {
	useCase ExportScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ExportScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/export/excel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	filename, err := h.useCase.Execute(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, exportSchedule.ErrSendFailed):
			h.logger.Warn("GET /export/excel - Failed to deliver file: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)

		default:
			h.logger.Error("GET /export/excel - Failed to export schedule: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /export/excel - Schedule exported: user_id=%d, file=%q", userID, filename)
	handlers.RespondJSON(w, http.StatusOK, ExportResponse{
		Status:  "success",
		Message: "Файл успешно отправлен в Telegram",
	})
}

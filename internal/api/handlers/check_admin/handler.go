package check_admin

import (
	"net/http"

	"github.com/avlasov/venue-booking-service/internal/api/handlers"
	"github.com/avlasov/venue-booking-service/internal/api/middleware"
)

// CheckAdminResponse HTTP response model
type CheckAdminResponse struct {
	IsAdmin bool `json:"is_admin"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/check-admin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	isAdmin, err := h.service.IsAdmin(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/check-admin - Failed to check admin: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/check-admin - user_id=%d, is_admin=%t", userID, isAdmin)
	handlers.RespondJSON(w, http.StatusOK, CheckAdminResponse{IsAdmin: isAdmin})
}

package create_comment

import (
	"context"

	"github.com/avlasov/venue-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	AddComment(ctx context.Context, bookingID, userID int64, text string) (*models.CommentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reject_booking

import (
	"context"

	"github.com/avlasov/venue-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	Reject(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

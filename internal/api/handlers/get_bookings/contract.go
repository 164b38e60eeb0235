package get_bookings

import (
	"context"

	"github.com/avlasov/venue-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	List(ctx context.Context, userID int64, sortBy, sortOrder string) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

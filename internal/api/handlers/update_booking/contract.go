package update_booking

import (
	"context"

	"github.com/avlasov/venue-booking-service/internal/domain"
	updateBooking "github.com/avlasov/venue-booking-service/internal/usecase/update_booking"
)

type UpdateBookingUseCase interface {
	Execute(ctx context.Context, req *updateBooking.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package approve_booking

import (
	"context"

	"github.com/avlasov/venue-booking-service/internal/domain"
	approveBooking "github.com/avlasov/venue-booking-service/internal/usecase/approve_booking"
)

type ApproveBookingUseCase interface {
	Execute(ctx context.Context, req *approveBooking.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

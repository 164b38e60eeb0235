package update_booking

import (
	"context"
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetApprovedOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
}

// AdminRepository интерфейс списка администраторов
type AdminRepository interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

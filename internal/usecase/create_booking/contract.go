package create_booking

import (
	"context"
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetApprovedOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// AdminRepository интерфейс списка администраторов
type AdminRepository interface {
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// Notifier интерфейс доставки уведомлений
type Notifier interface {
	BookingCreated(ctx context.Context, b *domain.Booking, adminIDs []int64) error
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

package approve_booking

import (
	"context"
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetApprovedOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	BookingApproved(ctx context.Context, booking *domain.Booking) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

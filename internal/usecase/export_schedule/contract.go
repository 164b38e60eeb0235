package export_schedule

import (
	"context"
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetContainedInWindow(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// Notifier интерфейс отправки файла пользователю
type Notifier interface {
	SendDocument(ctx context.Context, userID int64, filename string, data []byte, caption string) error
}

// TimeProvider источник текущего времени, подменяется в тестах
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package bookings

import (
	"context"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id int64, status domain.BookingStatus, from ...domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// CommentRepository интерфейс репозитория комментариев
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByBookingID(ctx context.Context, bookingID int64) ([]domain.Comment, error)
	GetByBookingIDs(ctx context.Context, bookingIDs []int64) (map[int64][]domain.Comment, error)
}

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	BookingRejected(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package approve_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlasov/venue-booking-service/internal/domain"
	bookingRepo "github.com/avlasov/venue-booking-service/internal/infra/storage/booking"
)

// Request модель запроса на одобрение бронирования
type Request struct {
	BookingID int64
	UserID    int64
}

// UseCase use case для одобрения бронирования администратором
type UseCase struct {
	bookingRepo BookingRepository
	adminRepo   AdminRepository
	notifier    Notifier
	txManager   TransactionManager
	rules       domain.CapacityRules
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	adminRepo AdminRepository,
	notifier Notifier,
	txManager TransactionManager,
	rules domain.CapacityRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		adminRepo:   adminRepo,
		notifier:    notifier,
		txManager:   txManager,
		rules:       rules,
		logger:      logger,
	}
}

// Execute одобряет бронирование. Перед сменой статуса доступность
// перепроверяется заново: между созданием заявки и ее одобрением могли
// появиться другие одобренные бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("ApproveBooking: booking=%d, admin=%d", req.BookingID, req.UserID)

	if req.BookingID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: bookingID and userID must be positive", ErrInvalidInput)
	}

	var approved *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование. Отсутствие заявки выясняется до проверки
		// прав: 404 не должен маскироваться под 403
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ApproveBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ApproveBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Одобрять может только администратор
		isAdmin, err := uc.adminRepo.IsAdmin(txCtx, req.UserID)
		if err != nil {
			uc.logger.Error("ApproveBooking: failed to check admin for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to check admin: %v", ErrInternal, err)
		}
		if !isAdmin {
			uc.logger.Warn("ApproveBooking: user=%d is not an admin", req.UserID)
			return ErrAccessDenied
		}

		// 3. Одобрить можно только заявку в ожидании
		if !booking.CanBeApproved() {
			uc.logger.Warn("ApproveBooking: booking id=%d has status %q", req.BookingID, booking.Status)
			return fmt.Errorf("%w: current status is %q", ErrInvalidState, booking.Status)
		}

		// 4. Повторная проверка вместимости. Сама заявка исключается
		// из набора пересечений по id
		overlapping, err := uc.bookingRepo.GetApprovedOverlapping(txCtx, booking.StartDate, booking.EndDate)
		if err != nil {
			uc.logger.Error("ApproveBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		if !uc.rules.CanShare(booking, overlapping) {
			uc.logger.Warn("ApproveBooking: capacity conflict for booking id=%d", req.BookingID)
			return ErrVenueConflict
		}

		// 5. Меняем статус
		if err := uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, domain.StatusApproved); err != nil {
			uc.logger.Error("ApproveBooking: failed to update status for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusApproved
		approved = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApproveBooking: successfully approved booking id=%d", req.BookingID)

	// Уведомление отправляется после фиксации транзакции, его сбой
	// не отменяет одобрение
	if err := uc.notifier.BookingApproved(ctx, approved); err != nil {
		uc.logger.Error("ApproveBooking: failed to send notification for booking id=%d: %v", approved.ID, err)
	}

	return approved, nil
}

package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlasov/venue-booking-service/internal/domain"
	bookingRepo "github.com/avlasov/venue-booking-service/internal/infra/storage/booking"
)

// Request модель запроса на частичное обновление бронирования.
// Поля патча со значением nil не меняются (merge-patch).
type Request struct {
	BookingID int64
	UserID    int64
	Patch     domain.BookingPatch
}

// UseCase use case для редактирования бронирования
type UseCase struct {
	bookingRepo BookingRepository
	adminRepo   AdminRepository
	txManager   TransactionManager
	rules       domain.CapacityRules
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	adminRepo AdminRepository,
	txManager TransactionManager,
	rules domain.CapacityRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		adminRepo:   adminRepo,
		txManager:   txManager,
		rules:       rules,
		logger:      logger,
	}
}

// Execute выполняет редактирование бронирования.
// Обновление атомарно: либо применяются все переданные поля, либо ни одно.
// Повторная проверка доступности запускается только если патч меняет даты,
// количество людей или место.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("UpdateBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	if req.BookingID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: bookingID and userID must be positive", ErrInvalidInput)
	}

	var updated *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Наличие бронирования проверяется раньше прав доступа:
		// несуществующий id всегда дает not found, а не forbidden
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Редактировать может владелец или администратор
		if err := uc.authorize(txCtx, current, req.UserID); err != nil {
			return err
		}

		// 3. Применяем патч и валидируем итоговое состояние
		merged := *current
		req.Patch.Apply(&merged)
		merged.StartDate = domain.DateOnly(merged.StartDate)
		merged.EndDate = domain.DateOnly(merged.EndDate)

		if merged.StartDate.After(merged.EndDate) {
			uc.logger.Warn("UpdateBooking: invalid date range for booking id=%d", req.BookingID)
			return ErrInvalidDateRange
		}
		if merged.PeopleCount < 0 {
			return fmt.Errorf("%w: people count must not be negative", ErrInvalidInput)
		}
		if merged.PeopleCount > uc.rules.MaxCapacity {
			uc.logger.Warn("UpdateBooking: people count %d exceeds capacity for booking id=%d",
				merged.PeopleCount, req.BookingID)
			return fmt.Errorf("%w: at most %d people", ErrTooManyPeople, uc.rules.MaxCapacity)
		}

		// 4. Перепроверяем доступность, если изменилось расписание.
		// Заявка исключает сама себя из набора пересечений.
		if req.Patch.ChangesSchedule() {
			overlapping, err := uc.bookingRepo.GetApprovedOverlapping(txCtx, merged.StartDate, merged.EndDate)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to get overlapping bookings: %v", err)
				return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
			}

			if !uc.rules.CanShare(&merged, overlapping) {
				uc.logger.Warn("UpdateBooking: capacity conflict for booking id=%d", req.BookingID)
				return ErrVenueConflict
			}
		}

		// 5. Сохраняем
		if err := uc.bookingRepo.Update(txCtx, &merged); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		updated = &merged
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", req.BookingID)
	return updated, nil
}

func (uc *UseCase) authorize(ctx context.Context, b *domain.Booking, userID int64) error {
	if b.UserID == userID {
		return nil
	}

	isAdmin, err := uc.adminRepo.IsAdmin(ctx, userID)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to check admin for user=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to check admin: %v", ErrInternal, err)
	}
	if !isAdmin {
		uc.logger.Warn("UpdateBooking: access denied for user=%d to booking id=%d", userID, b.ID)
		return ErrAccessDenied
	}

	return nil
}

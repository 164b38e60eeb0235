package create_booking

import (
	"context"
	"fmt"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// UseCase use case для создания бронирования
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

// Execute выполняет создание бронирования.
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции:
// две конкурентные заявки не могут обе пройти проверку вместимости по одному
// и тому же состоянию. Уведомления отправляются после коммита и не влияют
// на результат операции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: user=%d, dates=%s..%s, people=%d, theme=%q",
		req.UserID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.PeopleCount, req.Theme)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.rules); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	booking := req.toDomain()

	// 2. Проверка совместимости и вставка в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Подтвержденные бронирования, пересекающие запрошенный диапазон
		overlapping, err := uc.bookingRepo.GetApprovedOverlapping(txCtx, booking.StartDate, booking.EndDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		// 2.2. Проверка вместимости (для площадок из списка capacity check)
		if !uc.rules.CanShare(booking, overlapping) {
			uc.logger.Warn("CreateBooking: capacity conflict, user=%d, overlapping=%d",
				req.UserID, len(overlapping))
			return ErrVenueConflict
		}

		// 2.3. Сохраняем заявку в статусе pending
		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", booking.ID)

	// 3. Уведомляем администраторов о новой заявке. Ошибка доставки логируется
	// и не влияет на уже закоммиченное бронирование.
	uc.notifyAdmins(ctx, booking)

	return booking, nil
}

func (uc *UseCase) notifyAdmins(ctx context.Context, booking *domain.Booking) {
	adminIDs, err := uc.adminRepo.ListUserIDs(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list admins for notification: %v", err)
		return
	}

	if err := uc.notifier.BookingCreated(ctx, booking, adminIDs); err != nil {
		uc.logger.Error("CreateBooking: failed to notify admins about booking id=%d: %v", booking.ID, err)
	}
}

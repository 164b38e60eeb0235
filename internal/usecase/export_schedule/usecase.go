package export_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// realTimeProvider возвращает системное время
type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// UseCase use case экспорта расписания в Excel.
// Файл собирается по бронированиям, целиком попадающим в окно вокруг
// текущей даты, и отправляется запросившему пользователю в Telegram.
type UseCase struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	windowDays   int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, notifier Notifier, windowDays int, logger Logger) *UseCase {
	if windowDays <= 0 {
		windowDays = domain.DefaultExportWindowDays
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		timeProvider: realTimeProvider{},
		windowDays:   windowDays,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute формирует файл расписания и отправляет его пользователю.
// В отличие от уведомлений, отправка здесь и есть сама операция,
// поэтому ее сбой возвращается как ошибка.
func (uc *UseCase) Execute(ctx context.Context, userID int64) (string, error) {
	now := uc.timeProvider.Now()
	from := domain.DateOnly(now.AddDate(0, 0, -uc.windowDays))
	to := domain.DateOnly(now.AddDate(0, 0, uc.windowDays))

	uc.logger.Info("ExportSchedule: user=%d, window %s - %s",
		userID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	bookings, err := uc.bookingRepo.GetContainedInWindow(ctx, from, to)
	if err != nil {
		uc.logger.Error("ExportSchedule: failed to get bookings: %v", err)
		return "", fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	data, err := buildWorkbook(bookings)
	if err != nil {
		uc.logger.Error("ExportSchedule: failed to build workbook: %v", err)
		return "", fmt.Errorf("%w: %v", ErrBuildFile, err)
	}

	filename := fmt.Sprintf("Расписание_%s.xlsx", now.Format("02_01_2006"))

	if err := uc.notifier.SendDocument(ctx, userID, filename, data, "Расписание мероприятий"); err != nil {
		uc.logger.Error("ExportSchedule: failed to send file to user=%d: %v", userID, err)
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	uc.logger.Info("ExportSchedule: sent %q (%d bookings) to user=%d", filename, len(bookings), userID)
	return filename, nil
}

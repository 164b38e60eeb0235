package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// realTimeProvider возвращает системное время
type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// UseCase use case построения календаря занятости площадки.
// В календарь попадают только одобренные бронирования; дни без
// бронирований в ответ не включаются.
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	windowDays   int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, windowDays int, logger Logger) *UseCase {
	if windowDays <= 0 {
		windowDays = domain.DefaultCalendarWindowDays
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
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

// Execute возвращает занятость по дням за запрошенное окно
func (uc *UseCase) Execute(ctx context.Context, req *Request) ([]DayResponse, error) {
	from, to := uc.window(req)

	if from.After(to) {
		uc.logger.Warn("GetCalendar: invalid range %s - %s",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	uc.logger.Info("GetCalendar: window %s - %s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	bookings, err := uc.bookingRepo.GetApprovedOverlapping(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get approved bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get approved bookings: %v", ErrInternal, err)
	}

	days := domain.BuildCalendar(bookings, from, to)

	uc.logger.Info("GetCalendar: %d occupied days out of %d bookings", len(days), len(bookings))
	return fromCalendarDays(days), nil
}

func (uc *UseCase) window(req *Request) (time.Time, time.Time) {
	today := domain.DateOnly(uc.timeProvider.Now())

	from := today.AddDate(0, 0, -uc.windowDays)
	to := today.AddDate(0, 0, uc.windowDays)

	if req.StartDate != nil {
		from = domain.DateOnly(*req.StartDate)
	}
	if req.EndDate != nil {
		to = domain.DateOnly(*req.EndDate)
	}

	return from, to
}

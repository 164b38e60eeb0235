package export_schedule

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avlasov/venue-booking-service/internal/domain"
	"github.com/avlasov/venue-booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	err       error
	queriedAt [2]time.Time
}

func (f *fakeBookingRepo) GetContainedInWindow(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	f.queriedAt = [2]time.Time{start, end}
	return f.bookings, f.err
}

type fakeNotifier struct {
	err      error
	userID   int64
	filename string
	data     []byte
}

func (f *fakeNotifier) SendDocument(_ context.Context, userID int64, filename string, data []byte, _ string) error {
	f.userID = userID
	f.filename = filename
	f.data = data
	return f.err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_SendsWorkbook(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:          10,
				UserID:      7,
				StartDate:   date(2026, 7, 10),
				EndDate:     date(2026, 7, 12),
				PeopleCount: 100,
				Theme:       "Форум",
				Status:      domain.StatusApproved,
				Name:        ptr.Ptr("Летний форум"),
			},
		},
	}
	notifier := &fakeNotifier{}
	uc := NewUseCase(repo, notifier, 180, nopLogger{}).
		WithTimeProvider(fixedTime{now: date(2026, 7, 1)})

	filename, err := uc.Execute(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Расписание_01_07_2026.xlsx", filename)
	assert.Equal(t, filename, notifier.filename)
	assert.Equal(t, int64(7), notifier.userID)

	// окно +-180 дней вокруг текущей даты
	assert.Equal(t, date(2026, 1, 2), repo.queriedAt[0])
	assert.Equal(t, date(2026, 12, 28), repo.queriedAt[1])

	// файл читается обратно и содержит строку бронирования
	f, err := excelize.OpenReader(bytes.NewReader(notifier.data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Расписание")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Номер", rows[0][0])
	assert.Equal(t, "10", rows[1][0])
	assert.Equal(t, "10.07.2026", rows[1][2])
	assert.Equal(t, "Форум", rows[1][6])
}

func TestExecute_EmptyScheduleStillSent(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := NewUseCase(&fakeBookingRepo{}, notifier, 180, nopLogger{}).
		WithTimeProvider(fixedTime{now: date(2026, 7, 1)})

	_, err := uc.Execute(context.Background(), 7)

	require.NoError(t, err)
	assert.NotEmpty(t, notifier.data)
}

func TestExecute_SendFailureIsReturned(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("telegram down")}
	uc := NewUseCase(&fakeBookingRepo{}, notifier, 180, nopLogger{}).
		WithTimeProvider(fixedTime{now: date(2026, 7, 1)})

	_, err := uc.Execute(context.Background(), 7)
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("db down")}
	uc := NewUseCase(repo, &fakeNotifier{}, 180, nopLogger{}).
		WithTimeProvider(fixedTime{now: date(2026, 7, 1)})

	_, err := uc.Execute(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}

package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasov/venue-booking-service/internal/domain"
	"github.com/avlasov/venue-booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	overlapping    []*domain.Booking
	overlappingErr error
	createErr      error
	created        *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 42
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetApprovedOverlapping(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	return f.overlapping, f.overlappingErr
}

type fakeAdminRepo struct {
	adminIDs []int64
	err      error
}

func (f *fakeAdminRepo) ListUserIDs(_ context.Context) ([]int64, error) {
	return f.adminIDs, f.err
}

type fakeNotifier struct {
	err      error
	notified bool
	adminIDs []int64
}

func (f *fakeNotifier) BookingCreated(_ context.Context, _ *domain.Booking, adminIDs []int64) error {
	f.notified = true
	f.adminIDs = adminIDs
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo, admins *fakeAdminRepo, notifier *fakeNotifier) *UseCase {
	rules := domain.NewCapacityRules(300, []string{"Большая поляна"})
	return NewUseCase(repo, admins, notifier, fakeTxManager{}, rules, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		UserID:      7,
		StartDate:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
		PeopleCount: 100,
		Theme:       "Форум",
		Place:       ptr.Ptr("Большая поляна"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	admins := &fakeAdminRepo{adminIDs: []int64{1, 2}}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, admins, notifier)

	booking, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.True(t, notifier.notified)
	assert.Equal(t, []int64{1, 2}, notifier.adminIDs)
}

func TestExecute_InvalidDateRange(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAdminRepo{}, &fakeNotifier{})

	req := validRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Nil(t, repo.created)
}

func TestExecute_MissingTheme(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAdminRepo{}, &fakeNotifier{})

	req := validRequest()
	req.Theme = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_TooManyPeople(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAdminRepo{}, &fakeNotifier{})

	req := validRequest()
	req.PeopleCount = 301

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooManyPeople)
}

func TestExecute_CapacityConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		overlapping: []*domain.Booking{
			{ID: 1, PeopleCount: 250, Place: ptr.Ptr("Большая поляна"), Status: domain.StatusApproved},
		},
	}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, &fakeAdminRepo{}, notifier)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrVenueConflict)
	assert.Nil(t, repo.created)
	assert.False(t, notifier.notified)
}

func TestExecute_UncheckedPlaceIgnoresOverlap(t *testing.T) {
	repo := &fakeBookingRepo{
		overlapping: []*domain.Booking{
			{ID: 1, PeopleCount: 250, Place: ptr.Ptr("Конференц-зал"), Status: domain.StatusApproved},
		},
	}
	uc := newTestUseCase(repo, &fakeAdminRepo{}, &fakeNotifier{})

	req := validRequest()
	req.PeopleCount = 250
	req.Place = ptr.Ptr("Конференц-зал")

	booking, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, booking.Status)
}

func TestExecute_NotificationFailureDoesNotFail(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := &fakeNotifier{err: errors.New("telegram down")}
	uc := newTestUseCase(repo, &fakeAdminRepo{adminIDs: []int64{1}}, notifier)

	booking, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotNil(t, booking)
	assert.True(t, notifier.notified)
}

func TestExecute_OverlappingQueryError(t *testing.T) {
	repo := &fakeBookingRepo{overlappingErr: errors.New("db down")}
	uc := newTestUseCase(repo, &fakeAdminRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

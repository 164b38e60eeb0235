package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasov/venue-booking-service/internal/domain"
	bookingRepo "github.com/avlasov/venue-booking-service/internal/infra/storage/booking"
	"github.com/avlasov/venue-booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	byID           *domain.Booking
	byIDErr        error
	overlapping    []*domain.Booking
	overlapQueried bool
	updated        *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	b := *f.byID
	return &b, nil
}

func (f *fakeBookingRepo) GetApprovedOverlapping(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	f.overlapQueried = true
	return f.overlapping, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	f.updated = b
	return nil
}

type fakeAdminRepo struct {
	admins map[int64]bool
}

func (f *fakeAdminRepo) IsAdmin(_ context.Context, userID int64) (bool, error) {
	return f.admins[userID], nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          10,
		UserID:      7,
		StartDate:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
		PeopleCount: 100,
		Theme:       "Форум",
		Status:      domain.StatusApproved,
		Place:       ptr.Ptr("Большая поляна"),
	}
}

func newTestUseCase(repo *fakeBookingRepo, admins *fakeAdminRepo) *UseCase {
	rules := domain.NewCapacityRules(300, []string{"Большая поляна"})
	return NewUseCase(repo, admins, fakeTxManager{}, rules, nopLogger{})
}

func TestExecute_DescriptionOnlySkipsRecheck(t *testing.T) {
	repo := &fakeBookingRepo{byID: existingBooking()}
	uc := newTestUseCase(repo, &fakeAdminRepo{})

	updated, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		UserID:    7,
		Patch:     domain.BookingPatch{Description: ptr.Ptr("уточнение программы")},
	})

	require.NoError(t, err)
	// правки без смены расписания не перепроверяют доступность
	assert.False(t, repo.overlapQueried)
	assert.Equal(t, "уточнение программы", *updated.Description)
	assert.Equal(t, "Форум", updated.Theme)
	assert.Equal(t, 100, updated.PeopleCount)
}

func TestExecute_ScheduleChangeRevalidates(t *testing.T) {
	repo := &fakeBookingRepo{byID: existingBooking()}
	uc := newTestUseCase(repo, &fakeAdminRepo{})

	newEnd := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		UserID:    7,
		Patch:     domain.BookingPatch{EndDate: &newEnd},
	})

	require.NoError(t, err)
	assert.True(t, repo.overlapQueried)
	assert.Equal(t, newEnd, repo.updated.EndDate)
}

func TestExecute_ConflictRejectsWholeEdit(t *testing.T) {
	repo := &fakeBookingRepo{
		byID: existingBooking(),
		overlapping: []*domain.Booking{
			{ID: 99, PeopleCount: 250, Place: ptr.Ptr("Большая поляна"), Status: domain.StatusApproved},
		},
	}
	uc := newTestUseCase(repo, &fakeAdminRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		UserID:    7,
		Patch: domain.BookingPatch{
			PeopleCount: ptr.Ptr(150),
			Description: ptr.Ptr("и описание заодно"),
		},
	})

	assert.ErrorIs(t, err, ErrVenueConflict)
	// ни одно поле не сохраняется при отказе
	assert.Nil(t, repo.updated)
}

func TestExecute_SelfExcludedFromRecheck(t *testing.T) {
	current := existingBooking()
	repo := &fakeBookingRepo{
		byID: current,
		overlapping: []*domain.Booking{
			{ID: current.ID, PeopleCount: 100, Place: ptr.Ptr("Большая поляна"), Status: domain.StatusApproved},
			{ID: 99, PeopleCount: 100, Place: ptr.Ptr("Большая поляна"), Status: domain.StatusApproved},
		},
	}
	uc := newTestUseCase(repo, &fakeAdminRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		UserID:    7,
		Patch:     domain.BookingPatch{PeopleCount: ptr.Ptr(200)},
	})

	// 200 + 100 (чужая заявка) = 300, собственная старая версия не учитывается
	require.NoError(t, err)
	assert.Equal(t, 200, repo.updated.PeopleCount)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{byIDErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(repo, &fakeAdminRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		UserID:    999,
		Patch:     domain.BookingPatch{Description: ptr.Ptr("x")},
	})

	// несуществующая заявка дает not found даже для чужого пользователя
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{byID: existingBooking()}
	uc := newTestUseCase(repo, &fakeAdminRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		UserID:    999,
		Patch:     domain.BookingPatch{Description: ptr.Ptr("x")},
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_AdminCanEditForeignBooking(t *testing.T) {
	repo := &fakeBookingRepo{byID: existingBooking()}
	uc := newTestUseCase(repo, &fakeAdminRepo{admins: map[int64]bool{999: true}})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		UserID:    999,
		Patch:     domain.BookingPatch{Description: ptr.Ptr("правка администратора")},
	})

	require.NoError(t, err)
	assert.NotNil(t, repo.updated)
}

func TestExecute_InvalidMergedDateRange(t *testing.T) {
	repo := &fakeBookingRepo{byID: existingBooking()}
	uc := newTestUseCase(repo, &fakeAdminRepo{})

	badStart := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		UserID:    7,
		Patch:     domain.BookingPatch{StartDate: &badStart},
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Nil(t, repo.updated)
}

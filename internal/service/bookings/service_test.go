package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasov/venue-booking-service/internal/domain"
	bookingRepo "github.com/avlasov/venue-booking-service/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	byID            *domain.Booking
	byIDErr         error
	list            []*domain.Booking
	listFilter      domain.ListFilter
	statusUpdates   map[int64]domain.BookingStatus
	statusFrom      []domain.BookingStatus
	updateStatusErr error
	deleted         []int64
	deleteErr       error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	b := *f.byID
	return &b, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.ListFilter) ([]*domain.Booking, error) {
	f.listFilter = filter
	return f.list, nil
}

func (f *fakeBookingRepo) UpdateStatusFrom(_ context.Context, id int64, status domain.BookingStatus, from ...domain.BookingStatus) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[int64]domain.BookingStatus)
	}
	f.statusUpdates[id] = status
	f.statusFrom = from
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCommentRepo struct {
	created []*domain.Comment
	grouped map[int64][]domain.Comment
}

func (f *fakeCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeCommentRepo) GetByBookingID(_ context.Context, bookingID int64) ([]domain.Comment, error) {
	return f.grouped[bookingID], nil
}

func (f *fakeCommentRepo) GetByBookingIDs(_ context.Context, _ []int64) (map[int64][]domain.Comment, error) {
	if f.grouped == nil {
		return map[int64][]domain.Comment{}, nil
	}
	return f.grouped, nil
}

type fakeAdminRepo struct {
	admins map[int64]bool
}

func (f *fakeAdminRepo) IsAdmin(_ context.Context, userID int64) (bool, error) {
	return f.admins[userID], nil
}

type fakeNotifier struct {
	rejected []int64
}

func (f *fakeNotifier) BookingRejected(_ context.Context, b *domain.Booking) error {
	f.rejected = append(f.rejected, b.ID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          10,
		UserID:      7,
		StartDate:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
		PeopleCount: 100,
		Theme:       "Форум",
		Status:      status,
	}
}

func newTestService(repo *fakeBookingRepo, comments *fakeCommentRepo, admins *fakeAdminRepo, notifier *fakeNotifier) *Service {
	return NewService(repo, comments, admins, notifier, nopLogger{})
}

func TestList_UserSeesOnlyOwn(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{testBooking(domain.StatusPending)}}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{}, &fakeNotifier{})

	list, err := svc.List(context.Background(), 7, "", "")

	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, repo.listFilter.UserID)
	assert.Equal(t, int64(7), *repo.listFilter.UserID)
}

func TestList_AdminSeesAll(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{testBooking(domain.StatusPending)}}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{admins: map[int64]bool{1: true}}, &fakeNotifier{})

	_, err := svc.List(context.Background(), 1, "start_date", "desc")

	require.NoError(t, err)
	assert.Nil(t, repo.listFilter.UserID)
	assert.Equal(t, "start_date", repo.listFilter.SortBy)
	assert.Equal(t, "desc", repo.listFilter.SortOrder)
}

func TestList_AttachesComments(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{testBooking(domain.StatusPending)}}
	comments := &fakeCommentRepo{
		grouped: map[int64][]domain.Comment{
			10: {{ID: 1, BookingID: 10, Text: "перенесли сцену"}},
		},
	}
	svc := newTestService(repo, comments, &fakeAdminRepo{}, &fakeNotifier{})

	list, err := svc.List(context.Background(), 7, "", "")

	require.NoError(t, err)
	require.Len(t, list[0].Comments, 1)
	assert.Equal(t, "перенесли сцену", list[0].Comments[0].Comment)
}

func TestReject_PendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{byID: testBooking(domain.StatusPending)}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{admins: map[int64]bool{1: true}}, notifier)

	resp, err := svc.Reject(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
	// заявка в ожидании не занимала расписание, уведомление не нужно
	assert.Empty(t, notifier.rejected)
}

func TestReject_ApprovedBookingNotifies(t *testing.T) {
	repo := &fakeBookingRepo{byID: testBooking(domain.StatusApproved)}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{admins: map[int64]bool{1: true}}, notifier)

	resp, err := svc.Reject(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
	assert.Equal(t, []int64{10}, notifier.rejected)
	// обновление гейтится исходными статусами
	assert.Equal(t, []domain.BookingStatus{domain.StatusPending, domain.StatusApproved}, repo.statusFrom)
}

func TestReject_ReturnsComments(t *testing.T) {
	repo := &fakeBookingRepo{byID: testBooking(domain.StatusPending)}
	comments := &fakeCommentRepo{
		grouped: map[int64][]domain.Comment{
			10: {{ID: 1, BookingID: 10, Text: "не хватило мест"}},
		},
	}
	svc := newTestService(repo, comments, &fakeAdminRepo{admins: map[int64]bool{1: true}}, &fakeNotifier{})

	resp, err := svc.Reject(context.Background(), 10, 1)

	require.NoError(t, err)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "не хватило мест", resp.Comments[0].Comment)
}

func TestReject_ConcurrentTransitionIsNotRepeated(t *testing.T) {
	// другой администратор успел сменить статус между чтением и записью
	repo := &fakeBookingRepo{
		byID:            testBooking(domain.StatusApproved),
		updateStatusErr: bookingRepo.ErrBookingNotFound,
	}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{admins: map[int64]bool{1: true}}, notifier)

	_, err := svc.Reject(context.Background(), 10, 1)

	assert.ErrorIs(t, err, ErrCannotReject)
	assert.Empty(t, notifier.rejected)
}

func TestReject_RejectedIsFinal(t *testing.T) {
	repo := &fakeBookingRepo{byID: testBooking(domain.StatusRejected)}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{admins: map[int64]bool{1: true}}, &fakeNotifier{})

	_, err := svc.Reject(context.Background(), 10, 1)

	assert.ErrorIs(t, err, ErrCannotReject)
	assert.Empty(t, repo.statusUpdates)
}

func TestReject_RequiresAdmin(t *testing.T) {
	repo := &fakeBookingRepo{byID: testBooking(domain.StatusPending)}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{}, &fakeNotifier{})

	_, err := svc.Reject(context.Background(), 10, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestReject_NotFoundCheckedBeforeAccess(t *testing.T) {
	// несуществующая заявка видна как 404 и для не-администратора
	repo := &fakeBookingRepo{byIDErr: bookingRepo.ErrBookingNotFound}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{}, &fakeNotifier{})

	_, err := svc.Reject(context.Background(), 404, 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete_Owner(t *testing.T) {
	repo := &fakeBookingRepo{byID: testBooking(domain.StatusApproved)}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{}, &fakeNotifier{})

	// удаление безусловно, статус заявки не важен
	err := svc.Delete(context.Background(), 10, 7)

	require.NoError(t, err)
	assert.Equal(t, []int64{10}, repo.deleted)
}

func TestDelete_ForeignUserDenied(t *testing.T) {
	repo := &fakeBookingRepo{byID: testBooking(domain.StatusPending)}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{}, &fakeNotifier{})

	err := svc.Delete(context.Background(), 10, 999)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestDelete_AdminCanDeleteForeign(t *testing.T) {
	repo := &fakeBookingRepo{byID: testBooking(domain.StatusPending)}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{admins: map[int64]bool{999: true}}, &fakeNotifier{})

	err := svc.Delete(context.Background(), 10, 999)

	require.NoError(t, err)
	assert.Equal(t, []int64{10}, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{byIDErr: bookingRepo.ErrBookingNotFound}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{}, &fakeNotifier{})

	err := svc.Delete(context.Background(), 10, 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAddComment(t *testing.T) {
	repo := &fakeBookingRepo{byID: testBooking(domain.StatusPending)}
	comments := &fakeCommentRepo{}
	svc := newTestService(repo, comments, &fakeAdminRepo{}, &fakeNotifier{})

	resp, err := svc.AddComment(context.Background(), 10, 7, "  нужна сцена  ")

	require.NoError(t, err)
	assert.Equal(t, "нужна сцена", resp.Comment)
	assert.Equal(t, int64(10), resp.BookingID)
}

func TestAddComment_EmptyText(t *testing.T) {
	repo := &fakeBookingRepo{byID: testBooking(domain.StatusPending)}
	svc := newTestService(repo, &fakeCommentRepo{}, &fakeAdminRepo{}, &fakeNotifier{})

	_, err := svc.AddComment(context.Background(), 10, 7, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsAdmin(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeCommentRepo{}, &fakeAdminRepo{admins: map[int64]bool{1: true}}, &fakeNotifier{})

	isAdmin, err := svc.IsAdmin(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasov/venue-booking-service/internal/api/middleware"
	"github.com/avlasov/venue-booking-service/internal/domain"
	createBooking "github.com/avlasov/venue-booking-service/internal/usecase/create_booking"
)

type fakeUseCase struct {
	booking *domain.Booking
	err     error
	gotReq  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*domain.Booking, error) {
	f.gotReq = req
	return f.booking, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	router := http.NewServeMux()
	router.Handle("/api/v1/bookings", middleware.Auth(http.HandlerFunc(handler.Handle)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("X-User-ID", "7")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		booking: &domain.Booking{
			ID:          42,
			UserID:      7,
			StartDate:   domain.DateOnly(mustDate("2026-07-10")),
			EndDate:     domain.DateOnly(mustDate("2026-07-12")),
			PeopleCount: 100,
			Theme:       "Форум",
			Status:      domain.StatusPending,
		},
	}

	rec := doRequest(t, uc, `{
		"start_date": "2026-07-10",
		"end_date": "2026-07-12",
		"people_count": 100,
		"theme": "Форум"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(7), uc.gotReq.UserID)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(42), resp["id"])
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, "2026-07-10", resp["start_date"])
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"start_date": "10.07.2026", "end_date": "2026-07-12", "theme": "Форум"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Conflict(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrVenueConflict}

	rec := doRequest(t, uc, `{
		"start_date": "2026-07-10",
		"end_date": "2026-07-12",
		"people_count": 100,
		"theme": "Форум"
	}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func mustDate(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

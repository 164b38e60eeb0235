package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avlasov/venue-booking-service/pkg/ptr"
)

func TestStatusTransitions(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	approved := &Booking{Status: StatusApproved}
	rejected := &Booking{Status: StatusRejected}

	assert.True(t, pending.CanBeApproved())
	assert.False(t, approved.CanBeApproved())
	assert.False(t, rejected.CanBeApproved())

	assert.True(t, pending.CanBeRejected())
	assert.True(t, approved.CanBeRejected())
	// отклоненная заявка окончательна
	assert.False(t, rejected.CanBeRejected())
}

func TestBookingPatch_ApplyPartial(t *testing.T) {
	b := &Booking{
		StartDate:   date(2026, 7, 10),
		EndDate:     date(2026, 7, 12),
		PeopleCount: 50,
		Theme:       "Форум",
		Description: ptr.Ptr("старое описание"),
	}

	patch := BookingPatch{
		Description: ptr.Ptr("новое описание"),
	}
	patch.Apply(b)

	// нетронутые поля сохраняются
	assert.Equal(t, "Форум", b.Theme)
	assert.Equal(t, 50, b.PeopleCount)
	assert.Equal(t, date(2026, 7, 10), b.StartDate)
	assert.Equal(t, "новое описание", *b.Description)
}

func TestBookingPatch_ChangesSchedule(t *testing.T) {
	assert.False(t, (&BookingPatch{Description: ptr.Ptr("x")}).ChangesSchedule())
	assert.False(t, (&BookingPatch{Theme: ptr.Ptr("x")}).ChangesSchedule())

	d := date(2026, 7, 10)
	assert.True(t, (&BookingPatch{StartDate: &d}).ChangesSchedule())
	assert.True(t, (&BookingPatch{EndDate: &d}).ChangesSchedule())
	assert.True(t, (&BookingPatch{PeopleCount: ptr.Ptr(10)}).ChangesSchedule())
	assert.True(t, (&BookingPatch{Place: ptr.Ptr("x")}).ChangesSchedule())
}

package domain

// Comment is an attached note on a booking.
// Comments are immutable and removed together with the booking.
type Comment struct {
	ID        int64
	BookingID int64
	Text      string
}

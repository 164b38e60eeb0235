package domain

import "time"

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// ValidStatus returns true if s is one of the persisted statuses
func ValidStatus(s BookingStatus) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Booking represents a venue booking request.
// The date range [StartDate, EndDate] is inclusive with day granularity.
type Booking struct {
	ID     int64
	UserID int64

	StartDate time.Time
	EndDate   time.Time

	PeopleCount        int  // участники с проживанием на площадке
	PeopleCountOverall *int // участники и зрители всего

	Theme  string
	Status BookingStatus

	// Описательные поля заявки, на логику не влияют
	Name                      *string
	Description               *string
	TargetAudience            *string
	Registration              *string
	Logistics                 *string
	ProgramType               *string
	Place                     *string
	ParticipantsAccommodation *string
	ExpertsCount              *int
	CuratorName               *string
	CuratorPosition           *string
	CuratorContact            *string
	OtherInfo                 *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Comments []Comment
}

// IsPending returns true if the booking has not been decided yet
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsApproved returns true if the booking occupies the venue
func (b *Booking) IsApproved() bool {
	return b.Status == StatusApproved
}

// CanBeApproved returns true if the booking may transition to approved.
// Only pending bookings are approvable; rejected is final.
func (b *Booking) CanBeApproved() bool {
	return b.Status == StatusPending
}

// CanBeRejected returns true if the booking may transition to rejected.
// An approved booking can be walked back; a rejected one stays rejected.
func (b *Booking) CanBeRejected() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// Overlaps returns true if the booking range shares at least one day with [start, end]
func (b *Booking) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}

// ListFilter фильтр списка бронирований
type ListFilter struct {
	UserID    *int64 // nil - без ограничения по владельцу (админ)
	SortBy    string // колонка сортировки (по умолчанию id)
	SortOrder string // asc | desc
}

// BookingPatch частичное обновление бронирования.
// nil означает "поле не передано, оставить как есть" - семантика merge-patch.
type BookingPatch struct {
	StartDate   *time.Time
	EndDate     *time.Time
	PeopleCount *int
	Place       *string

	PeopleCountOverall        *int
	Theme                     *string
	Name                      *string
	Description               *string
	TargetAudience            *string
	Registration              *string
	Logistics                 *string
	ProgramType               *string
	ParticipantsAccommodation *string
	ExpertsCount              *int
	CuratorName               *string
	CuratorPosition           *string
	CuratorContact            *string
	OtherInfo                 *string
}

// ChangesSchedule returns true if the patch touches fields that require
// re-running the availability and capacity checks
func (p *BookingPatch) ChangesSchedule() bool {
	return p.StartDate != nil || p.EndDate != nil || p.PeopleCount != nil || p.Place != nil
}

// Apply применяет переданные поля патча к бронированию.
// Отсутствующие (nil) поля не трогаются.
func (p *BookingPatch) Apply(b *Booking) {
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = *p.EndDate
	}
	if p.PeopleCount != nil {
		b.PeopleCount = *p.PeopleCount
	}
	if p.PeopleCountOverall != nil {
		b.PeopleCountOverall = p.PeopleCountOverall
	}
	if p.Theme != nil {
		b.Theme = *p.Theme
	}
	if p.Name != nil {
		b.Name = p.Name
	}
	if p.Description != nil {
		b.Description = p.Description
	}
	if p.TargetAudience != nil {
		b.TargetAudience = p.TargetAudience
	}
	if p.Registration != nil {
		b.Registration = p.Registration
	}
	if p.Logistics != nil {
		b.Logistics = p.Logistics
	}
	if p.ProgramType != nil {
		b.ProgramType = p.ProgramType
	}
	if p.Place != nil {
		b.Place = p.Place
	}
	if p.ParticipantsAccommodation != nil {
		b.ParticipantsAccommodation = p.ParticipantsAccommodation
	}
	if p.ExpertsCount != nil {
		b.ExpertsCount = p.ExpertsCount
	}
	if p.CuratorName != nil {
		b.CuratorName = p.CuratorName
	}
	if p.CuratorPosition != nil {
		b.CuratorPosition = p.CuratorPosition
	}
	if p.CuratorContact != nil {
		b.CuratorContact = p.CuratorContact
	}
	if p.OtherInfo != nil {
		b.OtherInfo = p.OtherInfo
	}
}

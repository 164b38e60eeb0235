package create_booking

import (
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID int64

	StartDate time.Time
	EndDate   time.Time

	PeopleCount        int
	PeopleCountOverall *int

	Theme string

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
}

// toDomain собирает новое бронирование в статусе pending
func (r *Request) toDomain() *domain.Booking {
	return &domain.Booking{
		UserID:                    r.UserID,
		StartDate:                 domain.DateOnly(r.StartDate),
		EndDate:                   domain.DateOnly(r.EndDate),
		PeopleCount:               r.PeopleCount,
		PeopleCountOverall:        r.PeopleCountOverall,
		Theme:                     r.Theme,
		Status:                    domain.StatusPending,
		Name:                      r.Name,
		Description:               r.Description,
		TargetAudience:            r.TargetAudience,
		Registration:              r.Registration,
		Logistics:                 r.Logistics,
		ProgramType:               r.ProgramType,
		Place:                     r.Place,
		ParticipantsAccommodation: r.ParticipantsAccommodation,
		ExpertsCount:              r.ExpertsCount,
		CuratorName:               r.CuratorName,
		CuratorPosition:           r.CuratorPosition,
		CuratorContact:            r.CuratorContact,
		OtherInfo:                 r.OtherInfo,
	}
}

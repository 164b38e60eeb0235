package update_booking

import (
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// UpdateBookingRequest HTTP request model.
// Все поля опциональны: отсутствующее поле остается без изменений.
type UpdateBookingRequest struct {
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	PeopleCount *int    `json:"people_count,omitempty"`
	Theme       *string `json:"theme,omitempty"`

	PeopleCountOverall *int `json:"people_count_overall,omitempty"`

	Name                      *string `json:"name,omitempty"`
	Description               *string `json:"description,omitempty"`
	TargetAudience            *string `json:"target_audience,omitempty"`
	Registration              *string `json:"registration,omitempty"`
	Logistics                 *string `json:"logistics,omitempty"`
	ProgramType               *string `json:"program_type,omitempty"`
	Place                     *string `json:"place,omitempty"`
	ParticipantsAccommodation *string `json:"participants_accommodation,omitempty"`
	ExpertsCount              *int    `json:"experts_count,omitempty"`
	CuratorName               *string `json:"curator_name,omitempty"`
	CuratorPosition           *string `json:"curator_position,omitempty"`
	CuratorContact            *string `json:"curator_contact,omitempty"`
	OtherInfo                 *string `json:"other_info,omitempty"`
}

// ToPatch конвертирует HTTP запрос в доменный патч
func (r *UpdateBookingRequest) ToPatch() (domain.BookingPatch, error) {
	patch := domain.BookingPatch{
		PeopleCount:               r.PeopleCount,
		PeopleCountOverall:        r.PeopleCountOverall,
		Theme:                     r.Theme,
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

	if r.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return domain.BookingPatch{}, err
		}
		patch.StartDate = &startDate
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return domain.BookingPatch{}, err
		}
		patch.EndDate = &endDate
	}

	return patch, nil
}

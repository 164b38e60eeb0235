package create_booking

import (
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
	createBooking "github.com/avlasov/venue-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StartDate   string `json:"start_date"` // "2026-07-01"
	EndDate     string `json:"end_date"`   // "2026-07-03"
	PeopleCount int    `json:"people_count"`
	Theme       string `json:"theme"`

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:                    userID,
		StartDate:                 startDate,
		EndDate:                   endDate,
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
	}, nil
}

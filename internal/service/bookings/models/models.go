package models

import (
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// CommentResponse модель комментария в ответах API
type CommentResponse struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"booking_id"`
	Comment   string `json:"comment"`
}

// BookingResponse модель бронирования в ответах API.
// Даты отдаются строками в формате YYYY-MM-DD.
type BookingResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PeopleCount int    `json:"people_count"`

	PeopleCountOverall *int `json:"people_count_overall,omitempty"`

	Theme  string `json:"theme"`
	Status string `json:"status"`

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

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`

	Comments []CommentResponse `json:"comments"`
}

// FromDomainBooking конвертирует доменную модель в модель ответа
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                        b.ID,
		UserID:                    b.UserID,
		StartDate:                 b.StartDate.Format(domain.DateFormat),
		EndDate:                   b.EndDate.Format(domain.DateFormat),
		PeopleCount:               b.PeopleCount,
		PeopleCountOverall:        b.PeopleCountOverall,
		Theme:                     b.Theme,
		Status:                    string(b.Status),
		Name:                      b.Name,
		Description:               b.Description,
		TargetAudience:            b.TargetAudience,
		Registration:              b.Registration,
		Logistics:                 b.Logistics,
		ProgramType:               b.ProgramType,
		Place:                     b.Place,
		ParticipantsAccommodation: b.ParticipantsAccommodation,
		ExpertsCount:              b.ExpertsCount,
		CuratorName:               b.CuratorName,
		CuratorPosition:           b.CuratorPosition,
		CuratorContact:            b.CuratorContact,
		OtherInfo:                 b.OtherInfo,
		Comments:                  FromDomainComments(b.Comments),
	}

	if !b.CreatedAt.IsZero() {
		resp.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	if !b.UpdatedAt.IsZero() {
		resp.UpdatedAt = b.UpdatedAt.Format(time.RFC3339)
	}

	return resp
}

// FromDomainBookingList конвертирует список доменных моделей
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// FromDomainComments конвертирует список комментариев
func FromDomainComments(comments []domain.Comment) []CommentResponse {
	result := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		result = append(result, CommentResponse{
			ID:        c.ID,
			BookingID: c.BookingID,
			Comment:   c.Text,
		})
	}
	return result
}

package get_calendar

import (
	"time"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// Request модель запроса календаря занятости.
// Если границы не заданы, окно строится вокруг текущей даты.
type Request struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// DayResponse агрегат занятости площадки за один день
type DayResponse struct {
	Date        string   `json:"date"`
	TotalPeople int      `json:"total_people"`
	Themes      []string `json:"themes"`
	Names       []string `json:"names"`
}

func fromCalendarDays(days []domain.CalendarDay) []DayResponse {
	result := make([]DayResponse, 0, len(days))
	for _, d := range days {
		result = append(result, DayResponse{
			Date:        d.Date.Format(domain.DateFormat),
			TotalPeople: d.TotalPeople,
			Themes:      d.Themes,
			Names:       d.Names,
		})
	}
	return result
}

package create_booking

import (
	"fmt"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Проверки порядка дат и вместимости выполняются до любого обращения к БД.
func validateRequest(req *Request, rules domain.CapacityRules) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Theme == "" {
		return fmt.Errorf("%w: theme is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if req.StartDate.After(req.EndDate) {
		return ErrInvalidDateRange
	}

	if req.PeopleCount < 0 {
		return fmt.Errorf("%w: people count must not be negative", ErrInvalidInput)
	}

	// Потолок площадки действует для любой заявки независимо от места
	if req.PeopleCount > rules.MaxCapacity {
		return fmt.Errorf("%w: at most %d people", ErrTooManyPeople, rules.MaxCapacity)
	}

	return nil
}

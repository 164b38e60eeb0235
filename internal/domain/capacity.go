package domain

// CapacityRules holds the venue capacity parameters.
// The aggregate headcount check applies only to places from CheckedPlaces;
// bookings at any other place may always coexist.
type CapacityRules struct {
	MaxCapacity   int
	checkedPlaces map[string]struct{}
}

// NewCapacityRules создает правила вместимости площадки
func NewCapacityRules(maxCapacity int, checkedPlaces []string) CapacityRules {
	places := make(map[string]struct{}, len(checkedPlaces))
	for _, p := range checkedPlaces {
		places[p] = struct{}{}
	}
	return CapacityRules{
		MaxCapacity:   maxCapacity,
		checkedPlaces: places,
	}
}

// AppliesTo returns true if the aggregate capacity check is engaged for the place
func (r CapacityRules) AppliesTo(place *string) bool {
	if place == nil {
		return false
	}
	_, ok := r.checkedPlaces[*place]
	return ok
}

// CanShare decides whether the candidate booking can share its date range
// with the given overlapping approved bookings.
//
// The check sums PeopleCount of the candidate and every overlapping booking
// and fails once the total exceeds MaxCapacity. It is engaged only when the
// candidate's place is capacity-checked. A booking with the candidate's own
// id is skipped, so re-validating an edit against a set that still contains
// the booking itself never conflicts with itself.
//
// Earlier revisions also rejected any overlap with a different theme; that
// rule is intentionally gone - capacity is the only sharing constraint.
func (r CapacityRules) CanShare(candidate *Booking, overlapping []*Booking) bool {
	if !r.AppliesTo(candidate.Place) {
		return true
	}

	total := candidate.PeopleCount
	for _, existing := range overlapping {
		if candidate.ID != 0 && existing.ID == candidate.ID {
			continue
		}
		total += existing.PeopleCount
		if total > r.MaxCapacity {
			return false
		}
	}

	return true
}

package domain

import "fmt"

// Spot represents a single parking spot in the lot inventory.
// The inventory is static: spots are never created or destroyed by this service.
type Spot struct {
	ID         int64
	RowLabel   string
	Number     int
	HasCharger bool
	// IsAvailable флаг обслуживания на уровне парковки (место закрыто на ремонт и т.п.).
	// Не связан с занятостью по датам — занятость всегда считается по диапазону.
	IsAvailable bool
}

// Satisfies returns true if the spot can serve a request with the given charger need.
// A request without charger need may take any spot, including charger-equipped ones.
func (s *Spot) Satisfies(needsCharger bool) bool {
	if needsCharger {
		return s.HasCharger
	}
	return true
}

// Label returns the human-readable position of the spot, e.g. "A-12"
func (s *Spot) Label() string {
	return fmt.Sprintf("%s-%d", s.RowLabel, s.Number)
}

package domain

import "time"

// PendingRequest represents a parking request awaiting allocation.
// No spot is attached until the request is accepted; acceptance consumes the
// request and produces a Reservation, refusal just deletes it.
type PendingRequest struct {
	ID           int64
	UserID       int64
	StartDate    time.Time
	EndDate      time.Time
	NeedsCharger bool

	CreatedAt time.Time
}

// DurationDays returns the inclusive day count of the requested range
func (p *PendingRequest) DurationDays() int {
	return InclusiveDays(p.StartDate, p.EndDate)
}

package domain

import "time"

type Sanction struct {
	ID        string    `json:"id"`
	CI        string    `json:"ci"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Active reports whether the sanction interval contains the given day.
func (s *Sanction) Active(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	return !d.Before(s.StartDate) && !d.After(s.EndDate)
}

package domain

import "time"

// Department is an organizational unit nested under exactly one
// administration.
type Department struct {
	ID               string
	Name             string
	AdministrationID string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Administration *Administration
}

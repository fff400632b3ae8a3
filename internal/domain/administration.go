package domain

import "time"

// Administration is the top-level organizational unit. Deleting one cascades
// to its departments at the storage layer.
type Administration struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

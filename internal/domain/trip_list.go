package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripList is a named, user-owned grouping of trips.
// ShareToken is nil unless the owner has enabled read-only public access.
type TripList struct {
	ID         uuid.UUID
	UserID     string
	Name       string `validate:"required"`
	ShareToken *string
	CreatedAt  time.Time
}

// IsShared reports whether the list currently has an active share token.
func (l TripList) IsShared() bool {
	return l.ShareToken != nil && *l.ShareToken != ""
}

// SharedTripList is what an anonymous viewer receives for a share token:
// the list and every trip in it.
type SharedTripList struct {
	List  TripList
	Trips []Trip
}

// Package domain contains the core data types for the trip planner.
// This package is imported by every other internal package (economics,
// repo, service, handler) and holds no behaviour beyond small accessors.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingTrip is the editable shape of a trip: everything a user types into the
// trip form, before the server assigns an identity.
//
// Nights is authoritative only when Arrive and Depart are both nil.
// At most one of FlightCostPerSeat / FlightCost is expected to be non-zero, and
// exactly one of the three lodging fields; the field edited last wins in the UI.
type PendingTrip struct {
	Name string `validate:"required"`
	Fun  int    `validate:"gte=0,lte=10"`

	Arrive *time.Time // nil when the trip is planned by nights only
	Depart *time.Time
	Nights int `validate:"gte=0"`

	Adults   int  `validate:"gte=0"`
	Children *int `validate:"omitempty,gte=0"`

	FlightCostPerSeat *float64 `validate:"omitempty,gte=0"`
	FlightCost        *float64 `validate:"omitempty,gte=0"`
	TaxiOrRentalCar   float64  `validate:"gte=0"`
	Entertainment     float64  `validate:"gte=0"`
	SkiPassPerDay     float64  `validate:"gte=0"`
	Childcare         float64  `validate:"gte=0"`

	LodgingTotal             float64 `validate:"gte=0"`
	LodgingPerNight          float64 `validate:"gte=0"`
	LodgingPerPersonPerNight float64 `validate:"gte=0"`

	FlightURL  string `validate:"omitempty,url"`
	LodgingURL string `validate:"omitempty,url"`

	TripListID *uuid.UUID
}

// Trip is a persisted PendingTrip. ID, UserID and the timestamps are assigned
// by the server.
type Trip struct {
	ID     uuid.UUID
	UserID string
	PendingTrip
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPersisted reports whether the trip has a server-assigned identity.
func (t Trip) IsPersisted() bool {
	return t.ID != uuid.Nil
}

// ChildCount returns Children, treating nil as zero.
func (p PendingTrip) ChildCount() int {
	if p.Children == nil {
		return 0
	}
	return *p.Children
}

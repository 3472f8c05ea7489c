package economics

import (
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Align tells a renderer which way to anchor a marker's label.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Marker is one trip placed on the 0-100 comparison axis.
type Marker struct {
	TripID   uuid.UUID
	Name     string
	Score    float64
	Position float64
	Align    Align
}

// Projection places a trip among its peers.
// Current is nil when the trip has no score yet.
type Projection struct {
	Lowest  Marker
	Highest Marker
	Current *Marker
	Points  []Marker
}

// Project maps current's score onto the 0-100 range spanned by the scores of
// peers (plus current itself when it is not already one of them).
//
// Trips scoring 0 or less are ignored. When nothing is left, Project returns
// nil. When every score is equal, every marker sits at 50. Otherwise positions
// interpolate linearly between the lowest (0) and highest (100) score, and the
// current marker is pinned to an end when it reaches or passes that end so it
// does not collide with the endpoint labels.
func Project(current domain.Trip, peers []domain.Trip) *Projection {
	currentScore := CalcScore(current.PendingTrip)

	members := make([]domain.Trip, 0, len(peers)+1)
	members = append(members, peers...)
	if currentScore > 0 && !containsTrip(peers, current) {
		members = append(members, current)
	}

	var scored []Marker
	for _, t := range members {
		if s := CalcScore(t.PendingTrip); s > 0 {
			scored = append(scored, Marker{TripID: t.ID, Name: t.Name, Score: s})
		}
	}
	if len(scored) == 0 {
		return nil
	}

	lowest, highest := scored[0], scored[0]
	for _, m := range scored[1:] {
		if m.Score < lowest.Score {
			lowest = m
		}
		if m.Score > highest.Score {
			highest = m
		}
	}
	axis := scoreAxis{min: lowest.Score, max: highest.Score}

	p := &Projection{
		Lowest:  axis.place(lowest),
		Highest: axis.place(highest),
		Points:  make([]Marker, len(scored)),
	}
	for i, m := range scored {
		p.Points[i] = axis.place(m)
	}

	if currentScore > 0 {
		m := axis.placePinned(Marker{TripID: current.ID, Name: current.Name, Score: currentScore})
		p.Current = &m
	}
	return p
}

type scoreAxis struct {
	min, max float64
}

func (a scoreAxis) flat() bool {
	return a.min == a.max
}

func (a scoreAxis) place(m Marker) Marker {
	if a.flat() {
		m.Position, m.Align = 50, AlignCenter
		return m
	}
	m.Position = clampPercent((m.Score - a.min) / (a.max - a.min) * 100)
	switch m.Position {
	case 0:
		m.Align = AlignLeft
	case 100:
		m.Align = AlignRight
	default:
		m.Align = AlignCenter
	}
	return m
}

func (a scoreAxis) placePinned(m Marker) Marker {
	switch {
	case a.flat():
		m.Position, m.Align = 50, AlignCenter
	case m.Score <= a.min:
		m.Position, m.Align = 0, AlignLeft
	case m.Score >= a.max:
		m.Position, m.Align = 100, AlignRight
	default:
		m = a.place(m)
		m.Align = AlignCenter
	}
	return m
}

func clampPercent(f float64) float64 {
	return min(max(f, 0), 100)
}

// containsTrip reports whether a persisted current trip is already among peers.
// Pending trips have no ID and are never considered present.
func containsTrip(peers []domain.Trip, current domain.Trip) bool {
	if !current.IsPersisted() {
		return false
	}
	for _, p := range peers {
		if p.ID == current.ID {
			return true
		}
	}
	return false
}

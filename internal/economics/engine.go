package economics

import (
	"github.com/pkordes/trip-planner/internal/domain"
)

// CalcNights returns the trip length in nights.
// An explicit non-zero Nights wins; otherwise the arrive/depart pair is used.
// A depart before arrive yields 0 rather than a negative count.
func CalcNights(t domain.PendingTrip) int {
	if t.Nights != 0 {
		return t.Nights
	}
	if t.Arrive == nil || t.Depart == nil {
		return 0
	}
	return max(daysBetween(*t.Arrive, *t.Depart), 0)
}

// CalcTravelers is adults plus children; nil children count as zero.
func CalcTravelers(t domain.PendingTrip) int {
	return t.Adults + t.ChildCount()
}

// CalcFlight is the pre-totaled flight cost when set, otherwise the per-seat
// cost times the number of adults. Children are not multiplied in.
func CalcFlight(t domain.PendingTrip) float64 {
	if total := deref(t.FlightCost); total != 0 {
		return total
	}
	return deref(t.FlightCostPerSeat) * float64(t.Adults)
}

// CalcTravel is flights plus ground transport.
func CalcTravel(t domain.PendingTrip) float64 {
	return CalcFlight(t) + t.TaxiOrRentalCar
}

// CalcLodgingTotal applies the first lodging strategy that has a value:
// a flat total, then per night, then per person per night.
func CalcLodgingTotal(t domain.PendingTrip) float64 {
	switch {
	case t.LodgingTotal != 0:
		return t.LodgingTotal
	case t.LodgingPerNight != 0:
		return t.LodgingPerNight * float64(CalcNights(t))
	default:
		return t.LodgingPerPersonPerNight * float64(CalcNights(t)) * float64(CalcTravelers(t))
	}
}

// ExpenseTotal sums the on-the-ground costs of a trip.
// Lodging is the derived total, so per-night and per-person pricing count in full.
func ExpenseTotal(t domain.PendingTrip) float64 {
	return t.Childcare + t.Entertainment + CalcLodgingTotal(t) + t.TaxiOrRentalCar + t.SkiPassPerDay
}

// CalcTotalCost is everything the trip costs: flights plus ExpenseTotal.
// Ground transport is already part of ExpenseTotal and is not added twice.
func CalcTotalCost(t domain.PendingTrip) float64 {
	return CalcFlight(t) + ExpenseTotal(t)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

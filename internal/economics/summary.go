package economics

import "github.com/pkordes/trip-planner/internal/domain"

// Summary is every derived figure for one trip, computed in a single pass for
// API responses and exports.
type Summary struct {
	Nights       int
	Travelers    int
	Flight       float64
	Travel       float64
	LodgingTotal float64
	ExpenseTotal float64
	TotalCost    float64
	Score        float64
	DateMode     DateMode
	AirbnbLink   string
	FlightLink   string
	HotelsLink   string
}

// Summarize computes the Summary of t.
func Summarize(t domain.PendingTrip) Summary {
	return Summary{
		Nights:       CalcNights(t),
		Travelers:    CalcTravelers(t),
		Flight:       CalcFlight(t),
		Travel:       CalcTravel(t),
		LodgingTotal: CalcLodgingTotal(t),
		ExpenseTotal: ExpenseTotal(t),
		TotalCost:    CalcTotalCost(t),
		Score:        CalcScore(t),
		DateMode:     LinkDateMode(t),
		AirbnbLink:   CalcAirbnbLink(t),
		FlightLink:   CalcFlightLink(t),
		HotelsLink:   CalcHotelsLink(t),
	}
}

package economics

import (
	"github.com/pkordes/trip-planner/internal/domain"
)

// Score tuning.
const (
	// MaxFun is the top of the fun rating scale and therefore of the score.
	MaxFun = 10

	// ScoreReferenceCost is the cost per traveler per night at which a trip
	// keeps half of its fun rating as score.
	ScoreReferenceCost = 250.0
)

// CalcScore rates a trip on a 0-10 scale: its fun rating discounted by how
// much each traveler pays per night.
//
//	score = fun / (1 + costPerTravelerNight / ScoreReferenceCost)
//
// A trip with no fun rating scores 0 and is left out of comparisons.
// Holding cost and duration fixed, the score never decreases as fun rises.
// Trips with zero travelers or nights are treated as one of each so the
// score stays finite.
func CalcScore(t domain.PendingTrip) float64 {
	fun := Clamp(t.Fun, 0, MaxFun)
	if fun == 0 {
		return 0
	}

	travelers := max(CalcTravelers(t), 1)
	nights := max(CalcNights(t), 1)
	perNight := max(CalcTotalCost(t), 0) / float64(travelers) / float64(nights)

	return float64(fun) / (1 + perNight/ScoreReferenceCost)
}

package economics

import "github.com/pkordes/trip-planner/internal/domain"

// ScheduleMode records which fields a trip's length comes from.
type ScheduleMode int

const (
	// NightsAuthoritative: Nights is the source of truth and dates are empty.
	NightsAuthoritative ScheduleMode = iota
	// DatesAuthoritative: arrive/depart are the source of truth and Nights is
	// derived from them.
	DatesAuthoritative
)

func (m ScheduleMode) String() string {
	if m == DatesAuthoritative {
		return "dates"
	}
	return "nights"
}

// Schedule is the arrive/depart/nights trio as a two-mode state machine.
// Each setter moves it into the mode of the field just edited, so the trip
// never carries both an explicit night count and a date pair.
type Schedule struct {
	mode   ScheduleMode
	arrive string
	depart string
	nights int
}

// NewSchedule reads the current state of a trip. A trip with both dates is in
// DatesAuthoritative mode; anything else is NightsAuthoritative.
func NewSchedule(t domain.PendingTrip) Schedule {
	if t.Arrive != nil && t.Depart != nil {
		return Schedule{
			mode:   DatesAuthoritative,
			arrive: FormatDate(t.Arrive),
			depart: FormatDate(t.Depart),
		}
	}
	return Schedule{mode: NightsAuthoritative, nights: t.Nights}
}

// Mode returns the current mode.
func (s Schedule) Mode() ScheduleMode { return s.mode }

// Arrive returns the arrival date, or "".
func (s Schedule) Arrive() string { return s.arrive }

// Depart returns the departure date, or "".
func (s Schedule) Depart() string { return s.depart }

// Nights returns the trip length under the current mode.
func (s Schedule) Nights() int {
	if s.mode == DatesAuthoritative {
		n, ok := DaysBetween(s.arrive, s.depart)
		if !ok {
			return 0
		}
		return max(n, 0)
	}
	return s.nights
}

// SetArrive sets the arrival date and recomputes departure as arrival plus the
// current night count (or one night when there is none).
// An empty date clears both dates and keeps the night count explicitly.
// A malformed date leaves the schedule untouched and returns false.
func (s *Schedule) SetArrive(date string) bool {
	if date == "" {
		s.nights = s.Nights()
		s.mode, s.arrive, s.depart = NightsAuthoritative, "", ""
		return true
	}

	nights := s.Nights()
	if nights <= 0 {
		nights = 1
	}
	depart := AddDays(date, nights)
	if depart == "" {
		return false
	}
	s.mode, s.arrive, s.depart, s.nights = DatesAuthoritative, AddDays(date, 0), depart, 0
	return true
}

// SetDepart moves the departure date. It needs an arrival date to anchor to;
// without one, or with a malformed date, it returns false.
func (s *Schedule) SetDepart(date string) bool {
	if s.arrive == "" {
		return false
	}
	normalised := AddDays(date, 0)
	if normalised == "" {
		return false
	}
	s.mode, s.depart, s.nights = DatesAuthoritative, normalised, 0
	return true
}

// SetNights makes the night count authoritative and clears both dates.
func (s *Schedule) SetNights(n int) {
	s.mode, s.arrive, s.depart, s.nights = NightsAuthoritative, "", "", max(n, 0)
}

// Apply writes the schedule back onto a trip.
func (s Schedule) Apply(t *domain.PendingTrip) {
	t.Arrive = ParseDate(s.arrive)
	t.Depart = ParseDate(s.depart)
	if s.mode == DatesAuthoritative {
		t.Nights = 0
		return
	}
	t.Nights = s.nights
}

package economics

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Search link bases. Variables so tests and deployments can point elsewhere.
var (
	AirbnbBaseURL = "https://www.airbnb.com/s/"
	FlightBaseURL = "https://www.google.com/travel/flights"
	HotelsBaseURL = "https://www.booking.com/searchresults.html"
)

// DateMode selects how search sites are asked about dates.
type DateMode string

const (
	// DateModeCalendar sends exact check-in and check-out dates.
	DateModeCalendar DateMode = "calendar"
	// DateModeFlexibleMonth asks for any stay within the next month.
	DateModeFlexibleMonth DateMode = "flexible_month"
)

// LinkDateMode is calendar when both dates are known, flexible otherwise.
func LinkDateMode(t domain.PendingTrip) DateMode {
	if t.Arrive != nil && t.Depart != nil {
		return DateModeCalendar
	}
	return DateModeFlexibleMonth
}

// CalcAirbnbLink builds an Airbnb homes search for the trip's destination.
func CalcAirbnbLink(t domain.PendingTrip) string {
	q := url.Values{}
	addCount(q, "adults", t.Adults)
	addCount(q, "children", t.ChildCount())

	switch LinkDateMode(t) {
	case DateModeCalendar:
		q.Set("date_picker_type", "calendar")
		q.Set("checkin", FormatDate(t.Arrive))
		q.Set("checkout", FormatDate(t.Depart))
	default:
		q.Set("date_picker_type", "flexible_dates")
		q.Set("flexible_trip_lengths[]", "one_month")
	}

	return AirbnbBaseURL + url.PathEscape(strings.TrimSpace(t.Name)) + "/homes?" + q.Encode()
}

// CalcFlightLink builds a free-text Google Flights query.
func CalcFlightLink(t domain.PendingTrip) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Flights to %s", strings.TrimSpace(t.Name))

	switch LinkDateMode(t) {
	case DateModeCalendar:
		fmt.Fprintf(&b, " on %s through %s", FormatDate(t.Arrive), FormatDate(t.Depart))
	default:
		if n := CalcNights(t); n > 0 {
			fmt.Fprintf(&b, " for %d nights", n)
		}
		b.WriteString(" within one month")
	}

	if t.Adults > 0 {
		fmt.Fprintf(&b, " %d adults", t.Adults)
	}
	if c := t.ChildCount(); c > 0 {
		fmt.Fprintf(&b, " %d children", c)
	}

	return FlightBaseURL + "?" + url.Values{"q": {b.String()}}.Encode()
}

// CalcHotelsLink builds a hotel search. Without dates the site is left to
// prompt for them, which is its flexible mode.
func CalcHotelsLink(t domain.PendingTrip) string {
	q := url.Values{}
	q.Set("ss", strings.TrimSpace(t.Name))
	addCount(q, "group_adults", t.Adults)
	addCount(q, "group_children", t.ChildCount())

	if LinkDateMode(t) == DateModeCalendar {
		q.Set("checkin", FormatDate(t.Arrive))
		q.Set("checkout", FormatDate(t.Depart))
	} else if n := CalcNights(t); n > 0 {
		q.Set("nflt", "stay_length="+strconv.Itoa(n))
	}

	return HotelsBaseURL + "?" + q.Encode()
}

func addCount(q url.Values, key string, n int) {
	if n != 0 {
		q.Set(key, strconv.Itoa(n))
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/economics"
)

// formFields lists the keys accepted by parseFormTrip.
var formFields = map[string]bool{
	"name": true, "fun": true,
	"arrive": true, "depart": true, "nights": true,
	"adults": true, "children": true,
	"flight_cost_per_seat": true, "flight_cost": true,
	"taxi_or_rental_car": true, "entertainment": true,
	"ski_pass_per_day": true, "childcare": true,
	"lodging_total": true, "lodging_per_night": true, "lodging_per_person_per_night": true,
	"flight_url": true, "lodging_url": true,
}

func newScoreCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Compute a trip's costs and score from raw form values",
		Long: `Reads one JSON object of trip form values from file, or from stdin when
file is omitted or "-". Values may be JSON numbers or strings exactly as
typed into a form ("0150", "$1,200"). Strings lose leading zeros and any
non-numeric characters; blank or unparseable values count as zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			trip, err := parseFormTrip(in)
			if err != nil {
				return err
			}
			s := economics.Summarize(trip)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaryJSON(trip, s))
			}
			return printSummary(cmd.OutOrStdout(), trip, s)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	return cmd
}

// parseFormTrip decodes a JSON object of form values into a PendingTrip.
// Unknown keys are rejected so that typos do not silently score as zero.
func parseFormTrip(r io.Reader) (domain.PendingTrip, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return domain.PendingTrip{}, fmt.Errorf("decode form values: %w", err)
	}

	var unknown []string
	for k := range raw {
		if !formFields[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return domain.PendingTrip{}, fmt.Errorf("unknown form fields: %s", strings.Join(unknown, ", "))
	}

	t := domain.PendingTrip{
		Name:                     strings.TrimSpace(stringValue(raw["name"])),
		Fun:                      economics.Clamp(economics.CoerceInt(raw["fun"]), 0, economics.MaxFun),
		Arrive:                   economics.ParseDate(stringValue(raw["arrive"])),
		Depart:                   economics.ParseDate(stringValue(raw["depart"])),
		Nights:                   economics.CoerceInt(raw["nights"]),
		Adults:                   economics.CoerceInt(raw["adults"]),
		TaxiOrRentalCar:          economics.Coerce(raw["taxi_or_rental_car"]),
		Entertainment:            economics.Coerce(raw["entertainment"]),
		SkiPassPerDay:            economics.Coerce(raw["ski_pass_per_day"]),
		Childcare:                economics.Coerce(raw["childcare"]),
		LodgingTotal:             economics.Coerce(raw["lodging_total"]),
		LodgingPerNight:          economics.Coerce(raw["lodging_per_night"]),
		LodgingPerPersonPerNight: economics.Coerce(raw["lodging_per_person_per_night"]),
		FlightURL:                strings.TrimSpace(stringValue(raw["flight_url"])),
		LodgingURL:               strings.TrimSpace(stringValue(raw["lodging_url"])),
	}
	if present(raw["children"]) {
		n := economics.CoerceInt(raw["children"])
		t.Children = &n
	}
	if present(raw["flight_cost_per_seat"]) {
		f := economics.Coerce(raw["flight_cost_per_seat"])
		t.FlightCostPerSeat = &f
	}
	if present(raw["flight_cost"]) {
		f := economics.Coerce(raw["flight_cost"])
		t.FlightCost = &f
	}
	return t, nil
}

// present reports whether a form value was filled in. Blank strings count as
// absent, matching an untouched input.
func present(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}

func stringValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

type scoreOutput struct {
	Name         string  `json:"name"`
	Arrive       string  `json:"arrive,omitempty"`
	Depart       string  `json:"depart,omitempty"`
	Nights       int     `json:"nights"`
	Travelers    int     `json:"travelers"`
	Flight       float64 `json:"flight"`
	Travel       float64 `json:"travel"`
	LodgingTotal float64 `json:"lodging_total"`
	ExpenseTotal float64 `json:"expense_total"`
	TotalCost    float64 `json:"total_cost"`
	Score        float64 `json:"score"`
	DateMode     string  `json:"date_mode"`
	AirbnbLink   string  `json:"airbnb_link"`
	FlightLink   string  `json:"flight_link"`
	HotelsLink   string  `json:"hotels_link"`
}

func summaryJSON(t domain.PendingTrip, s economics.Summary) scoreOutput {
	return scoreOutput{
		Name:         t.Name,
		Arrive:       economics.FormatDate(t.Arrive),
		Depart:       economics.FormatDate(t.Depart),
		Nights:       s.Nights,
		Travelers:    s.Travelers,
		Flight:       s.Flight,
		Travel:       s.Travel,
		LodgingTotal: s.LodgingTotal,
		ExpenseTotal: s.ExpenseTotal,
		TotalCost:    s.TotalCost,
		Score:        s.Score,
		DateMode:     string(s.DateMode),
		AirbnbLink:   s.AirbnbLink,
		FlightLink:   s.FlightLink,
		HotelsLink:   s.HotelsLink,
	}
}

func printSummary(w io.Writer, t domain.PendingTrip, s economics.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	name := t.Name
	if name == "" {
		name = "(unnamed)"
	}
	rows := [][2]string{
		{"Trip", name},
		{"Dates", dateRange(t)},
		{"Nights", fmt.Sprint(s.Nights)},
		{"Travelers", fmt.Sprint(s.Travelers)},
		{"Flight", fmt.Sprintf("%.2f", s.Flight)},
		{"Travel", fmt.Sprintf("%.2f", s.Travel)},
		{"Lodging", fmt.Sprintf("%.2f", s.LodgingTotal)},
		{"Expenses", fmt.Sprintf("%.2f", s.ExpenseTotal)},
		{"Total", fmt.Sprintf("%.2f", s.TotalCost)},
		{"Score", fmt.Sprintf("%.4f", s.Score)},
		{"Airbnb", s.AirbnbLink},
		{"Flights", s.FlightLink},
		{"Hotels", s.HotelsLink},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}

func dateRange(t domain.PendingTrip) string {
	if t.Arrive == nil || t.Depart == nil {
		return "flexible"
	}
	return economics.FormatDate(t.Arrive) + " to " + economics.FormatDate(t.Depart)
}

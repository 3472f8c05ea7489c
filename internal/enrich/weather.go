package enrich

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// wetDayThreshold is the daily precipitation (mm) above which a day counts as wet.
const wetDayThreshold = 1.0

// WeatherQuery describes what to summarise. Start and End are YYYY-MM-DD and
// may both be empty for trips planned by nights only; Year then selects the
// calendar year for the monthly summary.
type WeatherQuery struct {
	Location string
	Start    string
	End      string
	Year     int
}

// Key identifies the query's input for latest-input-wins tracking.
func (q WeatherQuery) Key() string {
	return q.Location + "|" + q.Start + "|" + q.End + "|" + strconv.Itoa(q.Year)
}

// RangeClimate summarises the days of the trip itself.
type RangeClimate struct {
	Start              string
	End                string
	AvgHigh            float64
	AvgLow             float64
	TotalPrecipitation float64
	WetDays            int
	Days               []DailyClimate
}

// MonthClimate summarises one calendar month.
type MonthClimate struct {
	Month         time.Month
	AvgHigh       float64
	AvgLow        float64
	Precipitation float64
}

// YearClimate picks out the extreme months of a year.
type YearClimate struct {
	Year    int
	Hottest MonthClimate
	Coldest MonthClimate
	Wettest MonthClimate
	Driest  MonthClimate
	Months  []MonthClimate
}

// WeatherSummary is the weather widget's content.
// Range is nil when the query had no dates.
type WeatherSummary struct {
	Place Place
	Range *RangeClimate
	Year  YearClimate
}

// WeatherService combines geocoding and climate lookups.
type WeatherService struct {
	geo     Geocoder
	climate ClimateClient
}

// NewWeatherService constructs a WeatherService.
func NewWeatherService(geo Geocoder, climate ClimateClient) *WeatherService {
	return &WeatherService{geo: geo, climate: climate}
}

// Summary geocodes the location, then fetches the trip range and the full
// year concurrently.
func (s *WeatherService) Summary(ctx context.Context, q WeatherQuery) (WeatherSummary, error) {
	place, err := s.geo.Lookup(ctx, q.Location)
	if err != nil {
		return WeatherSummary{}, err
	}

	year := q.Year
	if q.Start != "" {
		if t, err := time.Parse("2006-01-02", q.Start); err == nil {
			year = t.Year()
		}
	}

	var (
		rangeDays []DailyClimate
		yearDays  []DailyClimate
	)
	g, gctx := errgroup.WithContext(ctx)
	if q.Start != "" && q.End != "" {
		g.Go(func() error {
			var err error
			rangeDays, err = s.climate.Daily(gctx, place.Latitude, place.Longitude, q.Start, q.End)
			return err
		})
	}
	g.Go(func() error {
		var err error
		yearDays, err = s.climate.Daily(gctx, place.Latitude, place.Longitude,
			fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year))
		return err
	})
	if err := g.Wait(); err != nil {
		return WeatherSummary{}, err
	}

	out := WeatherSummary{Place: place, Year: summarizeYear(year, yearDays)}
	if q.Start != "" && q.End != "" {
		r := summarizeRange(q.Start, q.End, rangeDays)
		out.Range = &r
	}
	return out, nil
}

func summarizeRange(start, end string, days []DailyClimate) RangeClimate {
	r := RangeClimate{Start: start, End: end, Days: days}
	if len(days) == 0 {
		return r
	}
	var hi, lo float64
	for _, d := range days {
		hi += d.TempMax
		lo += d.TempMin
		r.TotalPrecipitation += d.Precipitation
		if d.Precipitation > wetDayThreshold {
			r.WetDays++
		}
	}
	n := float64(len(days))
	r.AvgHigh, r.AvgLow = hi/n, lo/n
	return r
}

func summarizeYear(year int, days []DailyClimate) YearClimate {
	type acc struct {
		hi, lo, precip float64
		n              int
	}
	var months [12]acc
	for _, d := range days {
		t, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			continue
		}
		a := &months[t.Month()-1]
		a.hi += d.TempMax
		a.lo += d.TempMin
		a.precip += d.Precipitation
		a.n++
	}

	y := YearClimate{Year: year}
	for i, a := range months {
		if a.n == 0 {
			continue
		}
		y.Months = append(y.Months, MonthClimate{
			Month:         time.Month(i + 1),
			AvgHigh:       a.hi / float64(a.n),
			AvgLow:        a.lo / float64(a.n),
			Precipitation: a.precip,
		})
	}
	if len(y.Months) == 0 {
		return y
	}

	y.Hottest, y.Coldest, y.Wettest, y.Driest = y.Months[0], y.Months[0], y.Months[0], y.Months[0]
	for _, m := range y.Months[1:] {
		if m.AvgHigh > y.Hottest.AvgHigh {
			y.Hottest = m
		}
		if m.AvgLow < y.Coldest.AvgLow {
			y.Coldest = m
		}
		if m.Precipitation > y.Wettest.Precipitation {
			y.Wettest = m
		}
		if m.Precipitation < y.Driest.Precipitation {
			y.Driest = m
		}
	}
	return y
}

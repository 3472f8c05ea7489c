package handler

import (
	"context"
	"errors"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/enrich"
	"github.com/pkordes/trip-planner/internal/handler/gen"
	"github.com/pkordes/trip-planner/internal/service"
)

// GetTripWeather handles GET /trips/{id}/weather.
// Upstream failures are a 200 with status "unavailable"; only a missing trip
// is an HTTP error.
func (s *Server) GetTripWeather(ctx context.Context, req gen.GetTripWeatherRequestObject) (gen.GetTripWeatherResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	result, err := s.enrich.Weather(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTripWeather404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}
	return gen.GetTripWeather200JSONResponse(weatherToResponse(result)), nil
}

// GetTripEvents handles GET /trips/{id}/events.
func (s *Server) GetTripEvents(ctx context.Context, req gen.GetTripEventsRequestObject) (gen.GetTripEventsResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	result, err := s.enrich.Events(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTripEvents404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}
	return gen.GetTripEvents200JSONResponse(eventsToResponse(result)), nil
}

// --- mapping helpers --------------------------------------------------------

func weatherToResponse(r service.WeatherResult) gen.WeatherResponse {
	resp := gen.WeatherResponse{Status: gen.EnrichStatus(r.Status), Message: optionalString(r.Message)}
	if r.Summary == nil {
		return resp
	}

	p := r.Summary.Place
	resp.Place = &gen.Place{
		Name:      p.Name,
		Country:   optionalString(p.Country),
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Timezone:  p.Timezone,
	}
	if rc := r.Summary.Range; rc != nil {
		days := make([]gen.DailyClimate, len(rc.Days))
		for i, d := range rc.Days {
			days[i] = gen.DailyClimate{Date: d.Date, TempMax: d.TempMax, TempMin: d.TempMin, Precipitation: d.Precipitation}
		}
		resp.Range = &gen.RangeClimate{
			Start:              rc.Start,
			End:                rc.End,
			AvgHigh:            rc.AvgHigh,
			AvgLow:             rc.AvgLow,
			TotalPrecipitation: rc.TotalPrecipitation,
			WetDays:            rc.WetDays,
			Days:               days,
		}
	}

	y := r.Summary.Year
	months := make([]gen.MonthClimate, len(y.Months))
	for i, m := range y.Months {
		months[i] = monthToResponse(m)
	}
	resp.Year = &gen.YearClimate{
		Year:    y.Year,
		Hottest: monthToResponse(y.Hottest),
		Coldest: monthToResponse(y.Coldest),
		Wettest: monthToResponse(y.Wettest),
		Driest:  monthToResponse(y.Driest),
		Months:  months,
	}
	return resp
}

func monthToResponse(m enrich.MonthClimate) gen.MonthClimate {
	return gen.MonthClimate{
		Month:         int(m.Month),
		AvgHigh:       m.AvgHigh,
		AvgLow:        m.AvgLow,
		Precipitation: m.Precipitation,
	}
}

func eventsToResponse(r service.EventsResult) gen.EventsResponse {
	resp := gen.EventsResponse{Status: gen.EnrichStatus(r.Status), Message: optionalString(r.Message)}
	if r.Status != service.EnrichOK {
		return resp
	}
	events := make([]gen.Event, len(r.Events))
	for i, e := range r.Events {
		events[i] = gen.Event{
			Name:      e.Name,
			Url:       e.URL,
			StartDate: e.StartDate,
			EndDate:   optionalString(e.EndDate),
			PriceMin:  e.PriceMin,
			PriceMax:  e.PriceMax,
			Currency:  optionalString(e.Currency),
			ImageUrl:  optionalString(e.ImageURL),
			Venue:     optionalString(e.Venue),
			City:      optionalString(e.City),
		}
	}
	resp.Events = &events
	return resp
}

// optionalString maps "" to nil so empty fields are omitted from JSON.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

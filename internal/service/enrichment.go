package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/economics"
	"github.com/pkordes/trip-planner/internal/enrich"
	"github.com/pkordes/trip-planner/internal/repo"
)

// EnrichStatus is the outcome of one widget fetch.
type EnrichStatus string

const (
	EnrichOK          EnrichStatus = "ok"
	EnrichUnavailable EnrichStatus = "unavailable"
	// EnrichSuperseded means a newer request for the same widget replaced this
	// one. Clients drop the response.
	EnrichSuperseded EnrichStatus = "superseded"
)

// WeatherResult is the weather widget's state for one trip.
// Summary is set only when Status is EnrichOK.
type WeatherResult struct {
	Status  EnrichStatus
	Message string
	Summary *enrich.WeatherSummary
}

// EventsResult is the events widget's state for one trip.
type EventsResult struct {
	Status  EnrichStatus
	Message string
	Events  []enrich.Event
}

// WeatherSource summarises destination climate. *enrich.WeatherService
// satisfies it.
type WeatherSource interface {
	Summary(ctx context.Context, q enrich.WeatherQuery) (enrich.WeatherSummary, error)
}

// EnrichmentService fetches display-only weather and events for a trip.
// Fetches for the same trip widget follow latest-input-wins: a request with
// changed trip details cancels the one in flight.
type EnrichmentService struct {
	trips   repo.TripRepo
	weather WeatherSource
	events  enrich.EventsClient
	tracker *enrich.Tracker
	now     func() time.Time
}

// NewEnrichmentService constructs an EnrichmentService. now supplies the
// current time for trips without dates; nil means time.Now.
func NewEnrichmentService(trips repo.TripRepo, weather WeatherSource, events enrich.EventsClient, tracker *enrich.Tracker, now func() time.Time) *EnrichmentService {
	if now == nil {
		now = time.Now
	}
	if tracker == nil {
		tracker = enrich.NewTracker()
	}
	return &EnrichmentService{trips: trips, weather: weather, events: events, tracker: tracker, now: now}
}

// Weather returns the climate summary for a trip's destination.
// Returns domain.ErrNotFound if the trip does not exist; upstream failures
// are reported through the result's Status, not as an error.
func (s *EnrichmentService) Weather(ctx context.Context, userID string, id uuid.UUID) (WeatherResult, error) {
	trip, err := s.trips.GetByID(ctx, userID, id)
	if err != nil {
		return WeatherResult{}, fmt.Errorf("service.EnrichmentService.Weather: %w", err)
	}

	q := enrich.WeatherQuery{
		Location: trip.Name,
		Start:    economics.FormatDate(trip.Arrive),
		End:      economics.FormatDate(trip.Depart),
		Year:     s.now().Year(),
	}
	summary, err := enrich.Track(ctx, s.tracker, id.String()+"/weather", q.Key(),
		func(ctx context.Context) (enrich.WeatherSummary, error) {
			return s.weather.Summary(ctx, q)
		})
	if err != nil {
		status, msg := s.failure(ctx, "Weather", id, err)
		return WeatherResult{Status: status, Message: msg}, nil
	}
	return WeatherResult{Status: EnrichOK, Summary: &summary}, nil
}

// Events returns ticketed events matching the trip's destination during the
// stay, or during the coming month for trips planned by nights only.
func (s *EnrichmentService) Events(ctx context.Context, userID string, id uuid.UUID) (EventsResult, error) {
	trip, err := s.trips.GetByID(ctx, userID, id)
	if err != nil {
		return EventsResult{}, fmt.Errorf("service.EnrichmentService.Events: %w", err)
	}

	q := enrich.EventQuery{Keyword: trip.Name}
	if trip.Arrive != nil && trip.Depart != nil {
		q.From = dayStart(*trip.Arrive)
		// Include the whole departure day.
		q.To = dayStart(*trip.Depart).AddDate(0, 0, 1)
	} else {
		// Day granularity keeps the tracker key stable across requests.
		q.From = dayStart(s.now())
		q.To = q.From.AddDate(0, 1, 0)
	}

	events, err := enrich.Track(ctx, s.tracker, id.String()+"/events", q.Key(),
		func(ctx context.Context) ([]enrich.Event, error) {
			return s.events.Search(ctx, q)
		})
	if err != nil {
		status, msg := s.failure(ctx, "Events", id, err)
		return EventsResult{Status: status, Message: msg}, nil
	}
	if events == nil {
		events = []enrich.Event{}
	}
	return EventsResult{Status: EnrichOK, Events: events}, nil
}

// failure classifies a widget fetch error. Anything other than supersession
// shows as unavailable; there are no retries.
func (s *EnrichmentService) failure(ctx context.Context, widget string, id uuid.UUID, err error) (EnrichStatus, string) {
	if errors.Is(err, enrich.ErrSuperseded) {
		return EnrichSuperseded, ""
	}
	slog.WarnContext(ctx, "enrichment unavailable", "widget", widget, "trip_id", id, "error", err)
	return EnrichUnavailable, enrich.Message(widget, err)
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/enrich"
	"github.com/pkordes/trip-planner/internal/service"
)

type fakeWeather struct {
	got  []enrich.WeatherQuery
	resp enrich.WeatherSummary
	err  error
}

func (f *fakeWeather) Summary(_ context.Context, q enrich.WeatherQuery) (enrich.WeatherSummary, error) {
	f.got = append(f.got, q)
	return f.resp, f.err
}

type fakeEvents struct {
	got  []enrich.EventQuery
	resp []enrich.Event
	err  error
}

func (f *fakeEvents) Search(_ context.Context, q enrich.EventQuery) ([]enrich.Event, error) {
	f.got = append(f.got, q)
	return f.resp, f.err
}

var _ enrich.EventsClient = (*fakeEvents)(nil)

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestEnrichmentService_Weather_DatedTrip(t *testing.T) {
	trip := domain.Trip{ID: uuid.New(), PendingTrip: validTrip()}
	weather := &fakeWeather{resp: enrich.WeatherSummary{Place: enrich.Place{Name: "Lisbon"}}}
	svc := service.NewEnrichmentService(storedTrips(trip), weather, &fakeEvents{}, nil, clock)

	got, err := svc.Weather(context.Background(), userID, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, service.EnrichOK, got.Status)
	require.NotNil(t, got.Summary)
	assert.Equal(t, "Lisbon", got.Summary.Place.Name)
	require.Len(t, weather.got, 1)
	assert.Equal(t, enrich.WeatherQuery{Location: "Lisbon", Start: "2025-06-01", End: "2025-06-08", Year: 2026}, weather.got[0])
}

func TestEnrichmentService_Weather_Unavailable(t *testing.T) {
	trip := domain.Trip{ID: uuid.New(), PendingTrip: validTrip()}
	weather := &fakeWeather{err: enrich.ErrNotFound}
	svc := service.NewEnrichmentService(storedTrips(trip), weather, &fakeEvents{}, nil, clock)

	got, err := svc.Weather(context.Background(), userID, trip.ID)

	require.NoError(t, err, "upstream failures are a widget state, not an error")
	assert.Equal(t, service.EnrichUnavailable, got.Status)
	assert.Contains(t, got.Message, "couldn't find")
	assert.Nil(t, got.Summary)

	// Terminal until the input changes: no second upstream call.
	_, err = svc.Weather(context.Background(), userID, trip.ID)
	require.NoError(t, err)
	assert.Len(t, weather.got, 1)
}

func TestEnrichmentService_Weather_TripNotFound(t *testing.T) {
	svc := service.NewEnrichmentService(storedTrips(), &fakeWeather{}, &fakeEvents{}, nil, clock)

	_, err := svc.Weather(context.Background(), userID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnrichmentService_Weather_Superseded(t *testing.T) {
	trip := domain.Trip{ID: uuid.New(), PendingTrip: validTrip()}
	svc := service.NewEnrichmentService(storedTrips(trip), &fakeWeather{err: enrich.ErrSuperseded}, &fakeEvents{}, nil, clock)

	got, err := svc.Weather(context.Background(), userID, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, service.EnrichSuperseded, got.Status)
	assert.Empty(t, got.Message)
}

func TestEnrichmentService_Events_DatedTripWindow(t *testing.T) {
	trip := domain.Trip{ID: uuid.New(), PendingTrip: validTrip()}
	events := &fakeEvents{resp: []enrich.Event{{Name: "Fado Night"}}}
	svc := service.NewEnrichmentService(storedTrips(trip), &fakeWeather{}, events, nil, clock)

	got, err := svc.Events(context.Background(), userID, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, service.EnrichOK, got.Status)
	assert.Len(t, got.Events, 1)
	require.Len(t, events.got, 1)
	q := events.got[0]
	assert.Equal(t, "Lisbon", q.Keyword)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), q.From)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), q.To, "departure day is included")
}

func TestEnrichmentService_Events_NightsOnlyUsesNextMonth(t *testing.T) {
	p := validTrip()
	p.Arrive, p.Depart, p.Nights = nil, nil, 4
	trip := domain.Trip{ID: uuid.New(), PendingTrip: p}
	events := &fakeEvents{}
	svc := service.NewEnrichmentService(storedTrips(trip), &fakeWeather{}, events, nil, clock)

	got, err := svc.Events(context.Background(), userID, trip.ID)

	require.NoError(t, err)
	assert.NotNil(t, got.Events)
	require.Len(t, events.got, 1)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), events.got[0].From)
	assert.Equal(t, time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC), events.got[0].To)
}

func TestEnrichmentService_Events_Unavailable(t *testing.T) {
	trip := domain.Trip{ID: uuid.New(), PendingTrip: validTrip()}
	events := &fakeEvents{err: errors.Join(enrich.ErrUnavailable, errors.New("502"))}
	svc := service.NewEnrichmentService(storedTrips(trip), &fakeWeather{}, events, nil, clock)

	got, err := svc.Events(context.Background(), userID, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, service.EnrichUnavailable, got.Status)
	assert.Equal(t, "Events unavailable right now", got.Message)
}

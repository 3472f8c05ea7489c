package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/enrich"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/handler/gen"
	"github.com/pkordes/trip-planner/internal/service"
)

type mockEnrichmentServicer struct {
	weather func(ctx context.Context, userID string, id uuid.UUID) (service.WeatherResult, error)
	events  func(ctx context.Context, userID string, id uuid.UUID) (service.EventsResult, error)
}

func (m *mockEnrichmentServicer) Weather(ctx context.Context, userID string, id uuid.UUID) (service.WeatherResult, error) {
	return m.weather(ctx, userID, id)
}
func (m *mockEnrichmentServicer) Events(ctx context.Context, userID string, id uuid.UUID) (service.EventsResult, error) {
	return m.events(ctx, userID, id)
}

var _ handler.EnrichmentServicer = (*mockEnrichmentServicer)(nil)

func newEnrichHandler(svc handler.EnrichmentServicer) http.Handler {
	return newHTTPHandler(handler.NewServer(nil, nil, nil, svc, nil))
}

func TestGetTripWeather_200_OK(t *testing.T) {
	july := enrich.MonthClimate{Month: time.July, AvgHigh: 31, AvgLow: 19, Precipitation: 4}
	jan := enrich.MonthClimate{Month: time.January, AvgHigh: 14, AvgLow: 6, Precipitation: 95}
	svc := &mockEnrichmentServicer{
		weather: func(_ context.Context, userID string, _ uuid.UUID) (service.WeatherResult, error) {
			assert.Equal(t, testUserID, userID)
			return service.WeatherResult{Status: service.EnrichOK, Summary: &enrich.WeatherSummary{
				Place: enrich.Place{Name: "Lisbon", Country: "Portugal", Latitude: 38.7, Longitude: -9.1, Timezone: "Europe/Lisbon"},
				Range: &enrich.RangeClimate{
					Start: "2025-06-01", End: "2025-06-02", AvgHigh: 27, AvgLow: 17, WetDays: 0,
					Days: []enrich.DailyClimate{{Date: "2025-06-01", TempMax: 26, TempMin: 17}, {Date: "2025-06-02", TempMax: 28, TempMin: 17}},
				},
				Year: enrich.YearClimate{Year: 2025, Hottest: july, Coldest: jan, Wettest: jan, Driest: july, Months: []enrich.MonthClimate{jan, july}},
			}}, nil
		},
	}

	rec := do(newEnrichHandler(svc), http.MethodGet, "/trips/"+uuid.New().String()+"/weather", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.WeatherResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gen.Ok, resp.Status)
	assert.Nil(t, resp.Message)
	require.NotNil(t, resp.Place)
	assert.Equal(t, "Lisbon", resp.Place.Name)
	require.NotNil(t, resp.Place.Country)
	require.NotNil(t, resp.Range)
	assert.Len(t, resp.Range.Days, 2)
	require.NotNil(t, resp.Year)
	assert.Equal(t, 7, resp.Year.Hottest.Month)
	assert.Equal(t, 1, resp.Year.Wettest.Month)
	assert.Len(t, resp.Year.Months, 2)
}

func TestGetTripWeather_200_Unavailable(t *testing.T) {
	svc := &mockEnrichmentServicer{
		weather: func(context.Context, string, uuid.UUID) (service.WeatherResult, error) {
			return service.WeatherResult{Status: service.EnrichUnavailable, Message: "Weather unavailable right now"}, nil
		},
	}

	rec := do(newEnrichHandler(svc), http.MethodGet, "/trips/"+uuid.New().String()+"/weather", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable","message":"Weather unavailable right now"}`, rec.Body.String())
}

func TestGetTripWeather_404(t *testing.T) {
	svc := &mockEnrichmentServicer{
		weather: func(context.Context, string, uuid.UUID) (service.WeatherResult, error) {
			return service.WeatherResult{}, domain.ErrNotFound
		},
	}

	rec := do(newEnrichHandler(svc), http.MethodGet, "/trips/"+uuid.New().String()+"/weather", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTripEvents_200_OK(t *testing.T) {
	price := 45.0
	svc := &mockEnrichmentServicer{
		events: func(context.Context, string, uuid.UUID) (service.EventsResult, error) {
			return service.EventsResult{Status: service.EnrichOK, Events: []enrich.Event{{
				Name: "Fado Night", URL: "https://example.com/e/1", StartDate: "2025-06-03",
				PriceMin: &price, PriceMax: &price, Currency: "EUR", Venue: "Clube de Fado", City: "Lisbon",
			}}}, nil
		},
	}

	rec := do(newEnrichHandler(svc), http.MethodGet, "/trips/"+uuid.New().String()+"/events", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.EventsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gen.Ok, resp.Status)
	require.NotNil(t, resp.Events)
	require.Len(t, *resp.Events, 1)
	ev := (*resp.Events)[0]
	assert.Equal(t, "Fado Night", ev.Name)
	assert.Nil(t, ev.EndDate)
	assert.Nil(t, ev.ImageUrl)
	require.NotNil(t, ev.Currency)
	assert.Equal(t, "EUR", *ev.Currency)
}

func TestGetTripEvents_200_NoneFound(t *testing.T) {
	svc := &mockEnrichmentServicer{
		events: func(context.Context, string, uuid.UUID) (service.EventsResult, error) {
			return service.EventsResult{Status: service.EnrichOK, Events: []enrich.Event{}}, nil
		},
	}

	rec := do(newEnrichHandler(svc), http.MethodGet, "/trips/"+uuid.New().String()+"/events", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","events":[]}`, rec.Body.String())
}

func TestGetTripEvents_200_Superseded(t *testing.T) {
	svc := &mockEnrichmentServicer{
		events: func(context.Context, string, uuid.UUID) (service.EventsResult, error) {
			return service.EventsResult{Status: service.EnrichSuperseded}, nil
		},
	}

	rec := do(newEnrichHandler(svc), http.MethodGet, "/trips/"+uuid.New().String()+"/events", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"superseded"}`, rec.Body.String())
}

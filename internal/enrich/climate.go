package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// climateModel is the downscaled model whose daily normals are requested.
const climateModel = "EC_Earth3P_HR"

// DailyClimate is one day of modelled climate at a location.
// Temperatures are °C, precipitation is mm.
type DailyClimate struct {
	Date          string
	TempMax       float64
	TempMin       float64
	Precipitation float64
}

// ClimateClient returns climatological daily series (normals, not forecasts).
type ClimateClient interface {
	Daily(ctx context.Context, lat, lon float64, start, end string) ([]DailyClimate, error)
}

// openMeteoClimate implements ClimateClient using the Open-Meteo climate API.
type openMeteoClimate struct {
	baseURL string
	http    *http.Client
}

// NewClimateClient creates a ClimateClient for the Open-Meteo climate API at
// baseURL (e.g. https://climate-api.open-meteo.com).
func NewClimateClient(baseURL string, client *http.Client) ClimateClient {
	return &openMeteoClimate{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

// climateResponse is the JSON body returned by GET /v1/climate.
// Series entries are null on days the model has no value.
type climateResponse struct {
	Daily struct {
		Time             []string   `json:"time"`
		Temperature2mMax []*float64 `json:"temperature_2m_max"`
		Temperature2mMin []*float64 `json:"temperature_2m_min"`
		PrecipitationSum []*float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

func (c *openMeteoClimate) Daily(ctx context.Context, lat, lon float64, start, end string) ([]DailyClimate, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("start_date", start)
	q.Set("end_date", end)
	q.Set("models", climateModel)
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")

	var resp climateResponse
	if err := getJSON(ctx, c.http, c.baseURL+"/v1/climate?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("enrich.ClimateClient.Daily: %w", err)
	}

	d := resp.Daily
	days := make([]DailyClimate, 0, len(d.Time))
	for i, date := range d.Time {
		days = append(days, DailyClimate{
			Date:          date,
			TempMax:       at(d.Temperature2mMax, i),
			TempMin:       at(d.Temperature2mMin, i),
			Precipitation: at(d.PrecipitationSum, i),
		})
	}
	return days, nil
}

// at returns s[i], or 0 when the entry is missing or null.
func at(s []*float64, i int) float64 {
	if i >= len(s) || s[i] == nil {
		return 0
	}
	return *s[i]
}

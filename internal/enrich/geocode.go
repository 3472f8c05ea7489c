package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// geocodeTTL is how long a resolved place stays cached. Place coordinates
// do not move.
const geocodeTTL = 30 * 24 * time.Hour

// Place is the best geocoding match for a free-text location.
type Place struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Geocoder resolves place names to coordinates.
type Geocoder interface {
	// Lookup returns the best match for name, or ErrNotFound.
	Lookup(ctx context.Context, name string) (Place, error)
}

// openMeteoGeocoder implements Geocoder using the Open-Meteo geocoding API.
type openMeteoGeocoder struct {
	baseURL string
	http    *http.Client
	cache   Cache
}

// NewGeocoder creates a Geocoder for the Open-Meteo geocoding API at baseURL
// (e.g. https://geocoding-api.open-meteo.com). A nil cache disables caching.
func NewGeocoder(baseURL string, client *http.Client, cache Cache) Geocoder {
	if cache == nil {
		cache = NopCache{}
	}
	return &openMeteoGeocoder{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
		cache:   cache,
	}
}

// geocodeResponse is the JSON body returned by GET /v1/search.
// Results is absent when nothing matched.
type geocodeResponse struct {
	Results []Place `json:"results"`
}

func (g *openMeteoGeocoder) Lookup(ctx context.Context, name string) (Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Place{}, ErrNotFound
	}

	key := "geocode:" + strings.ToLower(name)
	if b, ok, err := g.cache.Get(ctx, key); err != nil {
		slog.WarnContext(ctx, "geocode cache read failed", "error", err)
	} else if ok {
		var p Place
		if err := json.Unmarshal(b, &p); err == nil {
			return p, nil
		}
	}

	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")

	var resp geocodeResponse
	if err := getJSON(ctx, g.http, g.baseURL+"/v1/search?"+q.Encode(), &resp); err != nil {
		return Place{}, fmt.Errorf("enrich.Geocoder.Lookup: %w", err)
	}
	if len(resp.Results) == 0 {
		return Place{}, fmt.Errorf("enrich.Geocoder.Lookup: %q: %w", name, ErrNotFound)
	}

	place := resp.Results[0]
	if b, err := json.Marshal(place); err == nil {
		if err := g.cache.Set(ctx, key, b, geocodeTTL); err != nil {
			slog.WarnContext(ctx, "geocode cache write failed", "error", err)
		}
	}
	return place, nil
}

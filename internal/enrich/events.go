package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultEventLimit caps how many events one search returns.
const DefaultEventLimit = 10

// EventQuery is a keyword search over a date-time window.
type EventQuery struct {
	Keyword string
	From    time.Time
	To      time.Time
	Limit   int
}

// Key identifies the query's input for latest-input-wins tracking.
func (q EventQuery) Key() string {
	return q.Keyword + "|" + q.From.UTC().Format(time.RFC3339) + "|" + q.To.UTC().Format(time.RFC3339)
}

// Event is one ticketed event.
type Event struct {
	Name      string
	URL       string
	StartDate string
	EndDate   string
	PriceMin  *float64
	PriceMax  *float64
	Currency  string
	ImageURL  string
	Venue     string
	City      string
}

// EventsClient searches for ticketed events.
type EventsClient interface {
	Search(ctx context.Context, q EventQuery) ([]Event, error)
}

// discoveryClient implements EventsClient against a Ticketmaster
// Discovery-compatible API. The provider credential is added here, server
// side, so browsers never see it.
type discoveryClient struct {
	baseURL string
	apiKey  string
	limit   int
	http    *http.Client
}

// NewEventsClient creates an EventsClient for the Discovery API at baseURL
// (e.g. https://app.ticketmaster.com). limit <= 0 uses DefaultEventLimit.
func NewEventsClient(baseURL, apiKey string, limit int, client *http.Client) EventsClient {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	return &discoveryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		limit:   limit,
		http:    client,
	}
}

// discoveryResponse is the subset of GET /discovery/v2/events.json we read.
// _embedded is absent when there are no results.
type discoveryResponse struct {
	Embedded struct {
		Events []discoveryEvent `json:"events"`
	} `json:"_embedded"`
}

type discoveryEvent struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
		} `json:"start"`
		End struct {
			LocalDate string `json:"localDate"`
		} `json:"end"`
	} `json:"dates"`
	PriceRanges []struct {
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Currency string  `json:"currency"`
	} `json:"priceRanges"`
	Images []struct {
		URL   string `json:"url"`
		Width int    `json:"width"`
	} `json:"images"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
			City struct {
				Name string `json:"name"`
			} `json:"city"`
		} `json:"venues"`
	} `json:"_embedded"`
}

func (c *discoveryClient) Search(ctx context.Context, q EventQuery) ([]Event, error) {
	limit := q.Limit
	if limit <= 0 || limit > c.limit {
		limit = c.limit
	}

	v := url.Values{}
	v.Set("keyword", strings.TrimSpace(q.Keyword))
	v.Set("startDateTime", q.From.UTC().Format("2006-01-02T15:04:05Z"))
	v.Set("endDateTime", q.To.UTC().Format("2006-01-02T15:04:05Z"))
	v.Set("size", strconv.Itoa(limit))
	v.Set("sort", "date,asc")
	if c.apiKey != "" {
		v.Set("apikey", c.apiKey)
	}

	var resp discoveryResponse
	if err := getJSON(ctx, c.http, c.baseURL+"/discovery/v2/events.json?"+v.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("enrich.EventsClient.Search: %w", err)
	}

	events := make([]Event, 0, len(resp.Embedded.Events))
	for _, e := range resp.Embedded.Events {
		if len(events) == limit {
			break
		}
		events = append(events, toEvent(e))
	}
	return events, nil
}

func toEvent(e discoveryEvent) Event {
	ev := Event{
		Name:      e.Name,
		URL:       e.URL,
		StartDate: e.Dates.Start.LocalDate,
		EndDate:   e.Dates.End.LocalDate,
	}
	if len(e.PriceRanges) > 0 {
		pr := e.PriceRanges[0]
		ev.PriceMin, ev.PriceMax, ev.Currency = &pr.Min, &pr.Max, pr.Currency
	}
	// Widest image reads best as a card header.
	bestWidth := -1
	for _, img := range e.Images {
		if img.Width > bestWidth {
			bestWidth, ev.ImageURL = img.Width, img.URL
		}
	}
	if len(e.Embedded.Venues) > 0 {
		ev.Venue = e.Embedded.Venues[0].Name
		ev.City = e.Embedded.Venues[0].City.Name
	}
	return ev
}

// Package enrich fetches display-only context for a trip from third-party
// APIs: typical weather at the destination and ticketed events nearby.
// Nothing here feeds the economics package.
package enrich

import "errors"

var (
	// ErrNotFound indicates the location could not be geocoded.
	ErrNotFound = errors.New("location not found")

	// ErrUnavailable indicates a network failure or an unexpected HTTP
	// response from an upstream API.
	ErrUnavailable = errors.New("enrichment service unavailable")

	// ErrSuperseded indicates the request was cancelled because a newer
	// request for the same widget arrived with different input.
	// It is not a user-visible failure.
	ErrSuperseded = errors.New("request superseded")
)

// Message returns the human-readable text shown in place of a widget when
// err ends its fetch. Superseded requests have no message.
func Message(widget string, err error) string {
	switch {
	case err == nil, errors.Is(err, ErrSuperseded):
		return ""
	case errors.Is(err, ErrNotFound):
		return widget + " unavailable: we couldn't find that place"
	default:
		return widget + " unavailable right now"
	}
}

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/trip-planner/internal/domain"
)

// validate checks the struct tags on domain types. It caches struct metadata,
// so one instance serves the whole process.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateTrip enforces the rules shared by create, update and schedule edits.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Struct tags: fun in 0-10, every count and cost >= 0, URLs well formed.
//   - Arrive and Depart are set together, and Depart is not before Arrive.
func validateTrip(p domain.PendingTrip) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validate.Struct(p); err != nil {
		return tagError(err)
	}
	if (p.Arrive == nil) != (p.Depart == nil) {
		return fmt.Errorf("%w: arrive and depart must be set together", domain.ErrValidation)
	}
	if p.Depart != nil && p.Depart.Before(*p.Arrive) {
		return fmt.Errorf("%w: depart must not be before arrive", domain.ErrValidation)
	}
	return nil
}

// validateListName applies the TripList rules to a proposed name.
func validateListName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}

// tagError turns the first validator failure into an ErrValidation with a
// message naming the field in snake_case, as the API spells it.
func tagError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	fe := verrs[0]
	field := snakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	case "gte":
		return fmt.Errorf("%w: %s must be at least %s", domain.ErrValidation, field, fe.Param())
	case "lte":
		return fmt.Errorf("%w: %s must be at most %s", domain.ErrValidation, field, fe.Param())
	case "url":
		return fmt.Errorf("%w: %s must be a valid URL", domain.ErrValidation, field)
	default:
		return fmt.Errorf("%w: %s is invalid", domain.ErrValidation, field)
	}
}

// snakeCase converts a Go field name such as FlightCostPerSeat or FlightURL
// to flight_cost_per_seat / flight_url.
func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

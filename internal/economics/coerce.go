// Package economics derives trip costs, scores and comparison positions from
// trip records. Every function here is pure: no I/O, no clocks, no shared
// state, so callers may use it from any goroutine without coordination.
package economics

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coerce turns a raw form value into a non-negative number.
//
// nil and anything unparseable become 0. Numeric inputs are returned as-is.
// Strings lose their leading zeros and any non-numeric characters before
// parsing, so "007" is 7 and "0a12" is 12. Typing a second digit after an
// accidental "0" therefore replaces the zero instead of appending to it.
func Coerce(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return finite(f)
		}
		return coerceString(v.String())
	case string:
		return coerceString(v)
	default:
		return 0
	}
}

// MaxCount is the largest value CoerceInt returns. Counts are stored in
// INTEGER columns.
const MaxCount = math.MaxInt32

// CoerceInt is Coerce truncated toward zero and capped at MaxCount, for
// count fields.
func CoerceInt(value any) int {
	return int(min(Coerce(value), MaxCount))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func coerceString(s string) float64 {
	s = strings.TrimLeft(strings.TrimSpace(s), "0")

	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}

	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return finite(n)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

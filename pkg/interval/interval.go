// Package interval implements half-open time intervals and the overlap
// predicate used by the conflict and availability engines. An interval
// [start, end) claims its start instant but not its end instant, so a
// booking that ends exactly when another begins does not collide with it.
package interval

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("end must be after start")

type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func New(start, end time.Time) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Parse builds an interval from two RFC3339 timestamps. A malformed
// timestamp is always an error; it is never coerced into "no overlap".
func Parse(startStr, endStr string) (Interval, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid start time %q: %w", startStr, err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid end time %q: %w", endStr, err)
	}
	return New(start, end)
}

func (iv Interval) Validate() error {
	if iv.Start.IsZero() || iv.End.IsZero() {
		return errors.New("start and end are required")
	}
	if !iv.End.After(iv.Start) {
		return ErrInvalidRange
	}
	return nil
}

func (iv Interval) Overlaps(other Interval) bool {
	return Overlaps(iv.Start, iv.End, other.Start, other.End)
}

// Overlaps reports whether [start1, end1) and [start2, end2) intersect.
// Touching intervals do not overlap.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && end1.After(start2)
}

// Package daterange models stays as half-open calendar intervals [In, Out).
package daterange

import (
	"errors"
	"fmt"
	"hotel/shared/constant"
	"time"
)

var ErrInvalidRange = errors.New("date_in must be before date_out")

type Range struct {
	In  time.Time
	Out time.Time
}

// Parse reads two YYYY-MM-DD dates and rejects ranges that are empty or reversed.
func Parse(dateIn, dateOut string) (Range, error) {
	in, err := time.Parse(constant.DayDateFormat, dateIn)
	if err != nil {
		return Range{}, fmt.Errorf("invalid date_in %q: %w", dateIn, err)
	}

	out, err := time.Parse(constant.DayDateFormat, dateOut)
	if err != nil {
		return Range{}, fmt.Errorf("invalid date_out %q: %w", dateOut, err)
	}

	r := Range{In: in, Out: out}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

func (r Range) Validate() error {
	if !Day(r.In).Before(Day(r.Out)) {
		return ErrInvalidRange
	}

	return nil
}

// Overlaps reports whether the two stays share at least one night.
// Checkout and check-in on the same day do not overlap.
func (r Range) Overlaps(other Range) bool {
	return Day(r.In).Before(Day(other.Out)) && Day(other.In).Before(Day(r.Out))
}

func (r Range) Nights() int {
	return int(Day(r.Out).Sub(Day(r.In)).Hours() / 24)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.In.Format(constant.DayDateFormat), r.Out.Format(constant.DayDateFormat))
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

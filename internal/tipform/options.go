package tipform

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ErrInvalidRange is returned when a split range cannot hold a valid count.
var ErrInvalidRange = errors.New("invalid split range")

// Range bounds the split counter, inclusive on both ends.
type Range struct {
	Min int
	Max int
}

// DefaultRange is the split range used when none is configured.
var DefaultRange = Range{Min: 1, Max: 100}

// Validate checks that the range is non-empty and never allows zero people.
func (r Range) Validate() error {
	if r.Min < 1 {
		return fmt.Errorf("%w: min %d must be at least 1", ErrInvalidRange, r.Min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Clamp returns n limited to the range.
func (r Range) Clamp(n int) int {
	return max(r.Min, min(n, r.Max))
}

// Options configures a Form.
type Options struct {
	// SplitRange bounds the split counter. The zero value means DefaultRange.
	SplitRange Range

	// InitialBill is the starting bill text.
	InitialBill string

	// InitialSplit is the starting split count. Zero means SplitRange.Min;
	// anything else is clamped into the range.
	InitialSplit int

	// InitialTipFraction is the starting slider position, clamped to [0,1].
	InitialTipFraction float64

	// SliderSteps is the number of discrete stops between the slider ends.
	// Zero leaves the slider continuous.
	SliderSteps int

	// RecomputeOnBillChange makes bill edits recompute the derived amounts.
	// When false, only split and slider events recompute, so a bill edit
	// leaves TipAmount and TotalPerPerson as they were.
	RecomputeOnBillChange bool

	// OnSubmit receives the bill text when a valid bill is submitted.
	OnSubmit func(bill string)

	// OnInputDone runs after OnSubmit, e.g. to dismiss a keyboard.
	OnInputDone func()

	// Logger receives debug output. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns options for a fresh form with the default range.
func DefaultOptions() Options {
	return Options{SplitRange: DefaultRange}
}

func (o Options) withDefaults() Options {
	if o.SplitRange == (Range{}) {
		o.SplitRange = DefaultRange
	}
	if o.InitialSplit == 0 {
		o.InitialSplit = o.SplitRange.Min
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// clampFraction limits f to [0,1]. NaN becomes 0.
func clampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// snapFraction moves f onto the nearest stop of a slider with the given
// number of intermediate steps.
func snapFraction(f float64, steps int) float64 {
	if steps <= 0 {
		return f
	}
	intervals := float64(steps + 1)
	return math.Round(f*intervals) / intervals
}

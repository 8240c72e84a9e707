// Package tipform implements the reactive tip calculator form.
//
// A Form owns the bill text, split count and slider position, derives the
// tip amount and per-person total through the calculator package, and
// publishes a models.View to subscribers after every event that changed
// its state. A Form is not safe for concurrent use; callers deliver events
// one at a time.
package tipform

import (
	"log/slog"
	"strings"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/state"
)

// Form is the state holder behind one tip calculator screen.
type Form struct {
	opts Options
	log  *slog.Logger

	billText    *state.Cell[string]
	splitCount  *state.Cell[int]
	tipFraction *state.Cell[float64]
	tipAmount   *state.Cell[float64]
	total       *state.Cell[float64]
	valid       *state.Cell[bool]

	dirty       bool
	subscribers state.Observers[models.View]
}

// New creates a Form from opts.
func New(opts Options) (*Form, error) {
	opts = opts.withDefaults()
	if err := opts.SplitRange.Validate(); err != nil {
		return nil, err
	}

	tip := snapFraction(clampFraction(opts.InitialTipFraction), opts.SliderSteps)
	f := &Form{
		opts:        opts,
		log:         opts.Logger,
		billText:    state.NewCell(opts.InitialBill),
		splitCount:  state.NewCell(opts.SplitRange.Clamp(opts.InitialSplit)),
		tipFraction: state.NewCell(tip),
		tipAmount:   state.NewCell(0.0),
		total:       state.NewCell(0.0),
		valid:       state.NewCell(isValidBill(opts.InitialBill)),
	}

	markDirty := func() { f.dirty = true }
	f.billText.Observe(func(string) { markDirty() })
	f.splitCount.Observe(func(int) { markDirty() })
	f.tipFraction.Observe(func(float64) { markDirty() })
	f.tipAmount.Observe(func(float64) { markDirty() })
	f.total.Observe(func(float64) { markDirty() })
	f.valid.Observe(func(bool) { markDirty() })

	if opts.RecomputeOnBillChange {
		f.recomputeTip()
		f.recomputeTotal()
		f.dirty = false
	}
	return f, nil
}

// ChangeBill stores text as the new bill text.
func (f *Form) ChangeBill(text string) {
	f.billText.Set(text)
	f.valid.Set(isValidBill(text))
	if f.opts.RecomputeOnBillChange {
		f.recomputeTip()
		f.recomputeTotal()
	}
	f.publish()
}

// IncrementSplit adds one person unless the split is at its maximum.
// The per-person total is recomputed either way.
func (f *Form) IncrementSplit() {
	if f.splitCount.Get() < f.opts.SplitRange.Max {
		f.splitCount.Update(func(n int) int { return n + 1 })
	}
	f.recomputeTotal()
	f.publish()
}

// DecrementSplit removes one person unless the split is at its minimum.
// The per-person total is recomputed either way.
func (f *Form) DecrementSplit() {
	if f.splitCount.Get() > f.opts.SplitRange.Min {
		f.splitCount.Update(func(n int) int { return n - 1 })
	}
	f.recomputeTotal()
	f.publish()
}

// MoveSlider sets the tip fraction and recomputes both derived amounts.
// Out of range positions are clamped to [0,1].
func (f *Form) MoveSlider(fraction float64) {
	f.tipFraction.Set(snapFraction(clampFraction(fraction), f.opts.SliderSteps))
	f.recomputeTip()
	f.recomputeTotal()
	f.publish()
}

// Submit forwards the bill text to OnSubmit and then calls OnInputDone.
// It does nothing and returns false while the bill text is blank.
func (f *Form) Submit() bool {
	if !f.valid.Get() {
		f.log.Debug("Submit ignored, bill is blank")
		return false
	}
	bill := f.billText.Get()
	if f.opts.OnSubmit != nil {
		f.opts.OnSubmit(bill)
	}
	if f.opts.OnInputDone != nil {
		f.opts.OnInputDone()
	}
	return true
}

// Subscribe registers fn to receive a View after every state change.
func (f *Form) Subscribe(fn func(models.View)) (unsubscribe func()) {
	return f.subscribers.Add(fn)
}

// View returns a snapshot of the current state.
func (f *Form) View() models.View {
	fraction := f.tipFraction.Get()
	return models.View{
		BillText:       f.billText.Get(),
		SplitCount:     f.splitCount.Get(),
		SplitMin:       f.opts.SplitRange.Min,
		SplitMax:       f.opts.SplitRange.Max,
		TipFraction:    fraction,
		TipPercent:     calculator.TipPercent(fraction),
		TipAmount:      f.tipAmount.Get(),
		TotalPerPerson: f.total.Get(),
		Valid:          f.valid.Get(),
	}.WithDisplay()
}

// BillText returns the bill as typed.
func (f *Form) BillText() string {
	return f.billText.Get()
}

// SplitCount returns the number of people sharing the bill.
func (f *Form) SplitCount() int {
	return f.splitCount.Get()
}

// TipFraction returns the slider position.
func (f *Form) TipFraction() float64 {
	return f.tipFraction.Get()
}

// TipPercent returns the slider position as a whole percentage.
func (f *Form) TipPercent() int {
	return calculator.TipPercent(f.tipFraction.Get())
}

// TipAmount returns the last computed tip.
func (f *Form) TipAmount() float64 {
	return f.tipAmount.Get()
}

// TotalPerPerson returns the last computed per-person total.
func (f *Form) TotalPerPerson() float64 {
	return f.total.Get()
}

// Valid reports whether the bill text is non-blank.
func (f *Form) Valid() bool {
	return f.valid.Get()
}

// SplitRange returns the bounds of the split counter.
func (f *Form) SplitRange() Range {
	return f.opts.SplitRange
}

func (f *Form) recomputeTip() {
	bill := calculator.ParseBill(f.billText.Get())
	percent := f.TipPercent()
	f.tipAmount.Set(calculator.ComputeTip(bill, percent))
	f.log.Debug("Recomputed tip", "bill", bill, "tip_percent", percent, "tip", f.tipAmount.Get())
}

func (f *Form) recomputeTotal() {
	bill := calculator.ParseBill(f.billText.Get())
	split := f.splitCount.Get()
	percent := f.TipPercent()
	f.total.Set(calculator.ComputeTotalPerPerson(bill, split, percent))
	f.log.Debug("Recomputed total per person",
		"bill", bill,
		"split", split,
		"tip_percent", percent,
		"total_per_person", f.total.Get(),
	)
}

// publish sends one View to subscribers if anything changed since the
// last publish.
func (f *Form) publish() {
	if !f.dirty {
		return
	}
	f.dirty = false
	f.subscribers.Notify(f.View())
}

func isValidBill(text string) bool {
	return len(strings.TrimSpace(text)) > 0
}

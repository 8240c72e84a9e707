package models

import "github.com/dustin/go-humanize"

// amountFormat renders money with thousands separators and two decimals.
const amountFormat = "#,###.##"

// View is a rendering snapshot of a tip form.
type View struct {
	// BillText is the bill as typed, not necessarily numeric.
	BillText string `json:"bill_text"`

	// SplitCount is the number of people sharing the bill.
	SplitCount int `json:"split_count"`

	// SplitMin and SplitMax bound SplitCount.
	SplitMin int `json:"split_min"`
	SplitMax int `json:"split_max"`

	// TipFraction is the slider position in [0,1].
	TipFraction float64 `json:"tip_fraction"`

	// TipPercent is TipFraction scaled to a whole percentage.
	TipPercent int `json:"tip_percent"`

	// TipAmount is the tip on the whole bill.
	TipAmount float64 `json:"tip_amount"`

	// TotalPerPerson is (bill + tip) / SplitCount.
	TotalPerPerson float64 `json:"total_per_person"`

	// Valid is true when the bill text is non-blank. Renderers hide the
	// split and tip controls while it is false.
	Valid bool `json:"valid"`

	// TipAmountLabel and TotalPerPersonLabel are the amounts formatted
	// for display, like "1,234.50".
	TipAmountLabel      string `json:"tip_amount_label"`
	TotalPerPersonLabel string `json:"total_per_person_label"`

	// CanDecrement and CanIncrement report whether the split counter can
	// move. Renderers disable the buttons when false.
	CanDecrement bool `json:"can_decrement"`
	CanIncrement bool `json:"can_increment"`
}

// WithDisplay returns v with the formatted labels and counter flags
// derived from its numeric fields.
func (v View) WithDisplay() View {
	v.TipAmountLabel = FormatAmount(v.TipAmount)
	v.TotalPerPersonLabel = FormatAmount(v.TotalPerPerson)
	v.CanDecrement = v.SplitCount > v.SplitMin
	v.CanIncrement = v.SplitCount < v.SplitMax
	return v
}

// FormatAmount renders an amount like "1,234.50".
func FormatAmount(amount float64) string {
	return humanize.FormatFloat(amountFormat, amount)
}

package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{7.5, "7.50"},
		{28.75, "28.75"},
		{1234.5, "1,234.50"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.amount); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestWithDisplay_Labels(t *testing.T) {
	v := View{TipAmount: 7.5, TotalPerPerson: 28.75}.WithDisplay()

	if v.TipAmountLabel != "7.50" {
		t.Errorf("TipAmountLabel = %q, want %q", v.TipAmountLabel, "7.50")
	}
	if v.TotalPerPersonLabel != "28.75" {
		t.Errorf("TotalPerPersonLabel = %q, want %q", v.TotalPerPersonLabel, "28.75")
	}
}

func TestWithDisplay_CounterBounds(t *testing.T) {
	tests := []struct {
		name          string
		view          View
		wantDecrement bool
		wantIncrement bool
	}{
		{name: "at minimum", view: View{SplitCount: 1, SplitMin: 1, SplitMax: 100}, wantIncrement: true},
		{name: "in range", view: View{SplitCount: 5, SplitMin: 1, SplitMax: 100}, wantDecrement: true, wantIncrement: true},
		{name: "at maximum", view: View{SplitCount: 100, SplitMin: 1, SplitMax: 100}, wantDecrement: true},
		{name: "single value range", view: View{SplitCount: 3, SplitMin: 3, SplitMax: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.view.WithDisplay()
			if v.CanDecrement != tt.wantDecrement {
				t.Errorf("CanDecrement = %v, want %v", v.CanDecrement, tt.wantDecrement)
			}
			if v.CanIncrement != tt.wantIncrement {
				t.Errorf("CanIncrement = %v, want %v", v.CanIncrement, tt.wantIncrement)
			}
		})
	}
}

func TestView_JSONCarriesDisplayFields(t *testing.T) {
	v := View{SplitCount: 1, SplitMin: 1, SplitMax: 100, TipAmount: 1234.5, TotalPerPerson: 2469}.WithDisplay()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	for _, want := range []string{
		`"tip_amount_label":"1,234.50"`,
		`"total_per_person_label":"2,469.00"`,
		`"can_decrement":false`,
		`"can_increment":true`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON %s missing %s", data, want)
		}
	}
}

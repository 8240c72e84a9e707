package calculator

import (
	"math"
	"strconv"
	"strings"
)

// minTippableBill is the bill amount at or below which no tip is charged.
const minTippableBill = 1.0

// ComputeTip returns the tip owed on bill at tipPercent percent.
// Bills of 1 or less, and bills that are not finite numbers, get no tip.
func ComputeTip(bill float64, tipPercent int) float64 {
	if math.IsNaN(bill) || math.IsInf(bill, 0) || bill <= minTippableBill {
		return 0
	}
	return (bill * float64(tipPercent)) / 100
}

// ComputeTotalPerPerson computes each person's share of the bill plus tip.
// Callers must pass splitCount >= 1; smaller counts yield 0.
func ComputeTotalPerPerson(bill float64, splitCount int, tipPercent int) float64 {
	if splitCount < 1 {
		return 0
	}
	total := ComputeTip(bill, tipPercent) + bill
	return total / float64(splitCount)
}

// ParseBill converts raw bill text into an amount.
// Anything that is not a finite, non-negative decimal is treated as 0.
func ParseBill(text string) float64 {
	bill, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(bill) || math.IsInf(bill, 0) || bill < 0 {
		return 0
	}
	return bill
}

// TipPercent converts a slider fraction in [0,1] to a whole percentage.
func TipPercent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

package budget

import "testing"

func f(v float64) *float64 { return &v }

func TestTotals(t *testing.T) {
	items := []BudgetItem{
		{Category: "venue", EstimatedAmount: 5000, ActualAmount: f(5200), PaidAmount: f(2000)},
		{Category: "catering", EstimatedAmount: 3000, PaidAmount: f(500)},
		{Category: "flowers", EstimatedAmount: 800},
	}

	estimated, actual, paid := Totals(items)
	if estimated != 8800 {
		t.Errorf("estimated = %v, want 8800", estimated)
	}
	if actual != 5200 {
		t.Errorf("actual = %v, want 5200", actual)
	}
	if paid != 2500 {
		t.Errorf("paid = %v, want 2500", paid)
	}
}

func TestTotalsEmpty(t *testing.T) {
	estimated, actual, paid := Totals(nil)
	if estimated != 0 || actual != 0 || paid != 0 {
		t.Errorf("Totals(nil) = %v, %v, %v, want zeros", estimated, actual, paid)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range BudgetStatuses {
		if !validStatus(s) {
			t.Errorf("validStatus(%q) = false, want true", s)
		}
	}
	if validStatus("refunded") {
		t.Error(`validStatus("refunded") = true, want false`)
	}
}

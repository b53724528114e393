package cashflow

import (
	"testing"
	"time"

	"github.com/etnz/cashflow/date"
)

// setupLedger builds the ledger of the worked example: two expense rows on
// Food across two months and one uncategorized income row.
func setupLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger("USD",
		Transaction{Date: date.New(2024, time.January, 5), Description: "groceries", Amount: M(-50, "USD"), Category: "Food"},
		Transaction{Date: date.New(2024, time.January, 10), Description: "salary", Amount: M(2000, "USD")},
		Transaction{Date: date.New(2024, time.February, 1), Description: "groceries", Amount: M(-30, "USD"), Category: "Food"},
	)
}

func TestMonthlyTrends(t *testing.T) {
	monthly := MonthlyTrends(setupLedger(t))

	want := MonthlySeries{
		{Month: date.New(2024, time.January, 1), Income: M(2000, "USD"), Expense: M(-50, "USD"), Net: M(1950, "USD")},
		{Month: date.New(2024, time.February, 1), Income: M(0, "USD"), Expense: M(-30, "USD"), Net: M(-30, "USD")},
	}
	if len(monthly) != len(want) {
		t.Fatalf("got %d months, want %d", len(monthly), len(want))
	}
	for i, flow := range monthly {
		w := want[i]
		if flow.Month != w.Month {
			t.Errorf("month %d = %v, want %v", i, flow.Month, w.Month)
		}
		if !flow.Income.Equal(w.Income) || !flow.Expense.Equal(w.Expense) || !flow.Net.Equal(w.Net) {
			t.Errorf("month %v: got income %v expense %v net %v, want %v %v %v",
				flow.Month, flow.Income, flow.Expense, flow.Net, w.Income, w.Expense, w.Net)
		}
	}
}

func TestMonthlyTrends_Ordering(t *testing.T) {
	// Input months out of order still yield a chronological series.
	ledger := NewLedger("USD",
		Transaction{Date: date.New(2024, time.March, 3), Amount: M(-10, "USD"), Category: "Food"},
		Transaction{Date: date.New(2023, time.December, 24), Amount: M(100, "USD")},
		Transaction{Date: date.New(2024, time.January, 15), Amount: M(-5, "USD"), Category: "Food"},
	)
	monthly := MonthlyTrends(ledger)

	for i := 1; i < len(monthly); i++ {
		if !monthly[i-1].Month.Before(monthly[i].Month) {
			t.Errorf("series not chronological at %d: %v >= %v", i, monthly[i-1].Month, monthly[i].Month)
		}
	}
	if len(monthly) != 3 {
		t.Errorf("got %d months, want 3", len(monthly))
	}
}

func TestMonthlyTrends_NetIdentity(t *testing.T) {
	monthly := MonthlyTrends(setupLedger(t))

	totalNet, totalParts := M(0, "USD"), M(0, "USD")
	for _, flow := range monthly {
		if !flow.Net.Equal(flow.Income.Add(flow.Expense)) {
			t.Errorf("month %v: net %v != income %v + expense %v", flow.Month, flow.Net, flow.Income, flow.Expense)
		}
		totalNet = totalNet.Add(flow.Net)
		totalParts = totalParts.Add(flow.Income).Add(flow.Expense)
	}
	if !totalNet.Equal(totalParts) {
		t.Errorf("sum of net %v != sum of income+expense %v", totalNet, totalParts)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	ledger := NewLedger("USD",
		Transaction{Date: date.New(2024, time.January, 5), Amount: M(-50, "USD"), Category: "Food"},
		Transaction{Date: date.New(2024, time.January, 6), Amount: M(-80, "USD"), Category: "Rent"},
		Transaction{Date: date.New(2024, time.January, 7), Amount: M(-30, "USD"), Category: "Food"},
		Transaction{Date: date.New(2024, time.January, 8), Amount: M(2000, "USD"), Category: "Salary"},
		Transaction{Date: date.New(2024, time.January, 9), Amount: M(0, "USD"), Category: "Zero"},
	)
	byCategory := CategoryBreakdown(ledger)

	want := CategorySeries{
		{Category: "Food", Amount: M(-80, "USD")},
		{Category: "Rent", Amount: M(-80, "USD")},
	}
	if len(byCategory) != len(want) {
		t.Fatalf("got %d categories (%v), want %d", len(byCategory), byCategory, len(want))
	}
	for i, c := range byCategory {
		if c.Category != want[i].Category || !c.Amount.Equal(want[i].Amount) {
			t.Errorf("entry %d = %s %v, want %s %v", i, c.Category, c.Amount, want[i].Category, want[i].Amount)
		}
	}
}

func TestCategoryBreakdown_ExcludesIncome(t *testing.T) {
	byCategory := CategoryBreakdown(setupLedger(t))

	for _, c := range byCategory {
		if !c.Amount.IsNegative() {
			t.Errorf("category %q has non-negative total %v", c.Category, c.Amount)
		}
	}
	if len(byCategory) != 1 || byCategory[0].Category != "Food" || !byCategory[0].Amount.Equal(M(-80, "USD")) {
		t.Errorf("breakdown = %v, want Food: -80", byCategory)
	}
}

func TestCategoryBreakdown_MatchesMonthlyExpenses(t *testing.T) {
	ledger := setupLedger(t)

	monthlyExpenses := M(0, "USD")
	for _, flow := range MonthlyTrends(ledger) {
		monthlyExpenses = monthlyExpenses.Add(flow.Expense)
	}
	categoryExpenses := M(0, "USD")
	for _, c := range CategoryBreakdown(ledger) {
		categoryExpenses = categoryExpenses.Add(c.Amount)
	}
	// Both views sum the same expense rows, just grouped differently.
	if !monthlyExpenses.Equal(categoryExpenses) {
		t.Errorf("monthly expenses %v != category expenses %v", monthlyExpenses, categoryExpenses)
	}
}

func TestCategoryBreakdown_NoExpenses(t *testing.T) {
	ledger := NewLedger("USD",
		Transaction{Date: date.New(2024, time.January, 10), Amount: M(2000, "USD"), Category: "Salary"},
	)
	if byCategory := CategoryBreakdown(ledger); len(byCategory) != 0 {
		t.Errorf("breakdown = %v, want empty", byCategory)
	}
}

package cashflow

import (
	"maps"
	"slices"
	"strings"

	"github.com/etnz/cashflow/date"
)

// MonthlyFlow is one month bucket of the monthly series. Expense is stored
// signed negative, so Net is the plain sum of Income and Expense.
type MonthlyFlow struct {
	Month   date.Date
	Income  Money
	Expense Money
	Net     Money
}

// MonthlySeries is the monthly income/expense/net view, ascending by month,
// one entry per distinct month of the input.
type MonthlySeries []MonthlyFlow

// CategoryTotal is the signed sum of all expense amounts in one category.
type CategoryTotal struct {
	Category string
	Amount   Money // non-positive
}

// CategorySeries is the per-category expense view, ascending by signed sum
// (biggest spend first).
type CategorySeries []CategoryTotal

// MonthlyTrends groups the ledger by month bucket, sums income and expense
// amounts separately, and returns the chronological series. A month with no
// rows of one kind carries an explicit zero for it, never a missing field.
func MonthlyTrends(l *Ledger) MonthlySeries {
	type bucket struct {
		income  Money
		expense Money
	}
	zero := M(0, l.currency)
	buckets := make(map[date.Date]*bucket)
	for _, t := range l.transactions {
		b := buckets[t.Month()]
		if b == nil {
			b = &bucket{income: zero, expense: zero}
			buckets[t.Month()] = b
		}
		switch t.Kind() {
		case Income:
			b.income = b.income.Add(t.Amount)
		case Expense:
			b.expense = b.expense.Add(t.Amount)
		}
	}

	months := slices.SortedFunc(maps.Keys(buckets), date.Compare)
	series := make(MonthlySeries, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		series = append(series, MonthlyFlow{
			Month:   m,
			Income:  b.income,
			Expense: b.expense,
			// expense is already signed negative: net is a sum, not a subtraction.
			Net: b.income.Add(b.expense),
		})
	}
	return series
}

// CategoryBreakdown sums expense amounts (strictly negative rows only) per
// category, ascending by signed sum. Equal sums order by category name so the
// ranking is deterministic. Income rows never contribute; a ledger without
// expense rows yields an empty series.
func CategoryBreakdown(l *Ledger) CategorySeries {
	zero := M(0, l.currency)
	totals := make(map[string]Money)
	for _, t := range l.transactions {
		if !t.Amount.IsNegative() {
			continue
		}
		sum, ok := totals[t.Category]
		if !ok {
			sum = zero
		}
		totals[t.Category] = sum.Add(t.Amount)
	}

	series := make(CategorySeries, 0, len(totals))
	for category, amount := range totals {
		series = append(series, CategoryTotal{Category: category, Amount: amount})
	}
	slices.SortFunc(series, func(a, b CategoryTotal) int {
		if c := a.Amount.Cmp(b.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	return series
}

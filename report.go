package cashflow

import (
	"slices"
	"strings"
	"time"
)

// TrendSpec holds the monthly income/expense/net series ready for plotting as
// three overlaid lines.
type TrendSpec struct {
	Months  []time.Time
	Income  []float64
	Expense []float64
	Net     []float64
}

// CumulativeSpec holds the running net cashflow series ready for plotting.
type CumulativeSpec struct {
	Months []time.Time
	Values []float64
}

// ChartSet is the pure-data description of the three charts of a run.
// Rendering is someone else's job.
type ChartSet struct {
	Trend         TrendSpec
	TopCategories CategorySeries // at most 10, descending by magnitude, signs preserved
	CumulativeNet CumulativeSpec
}

// Summary is the numeric content of the summary report. Values and ordering
// are the contract here; currency formatting belongs to the renderer.
type Summary struct {
	Currency     string
	TotalIncome  Money
	TotalExpense Money // non-positive
	TotalNet     Money
	Top5         CategorySeries // amounts rounded to 2 decimals for display
}

// TopCategories ranks the breakdown by descending absolute amount and keeps at
// most n entries. Equal magnitudes order by category name. Signs are
// preserved: spending stays negative in the result, only the ranking uses the
// magnitude. An empty breakdown yields an empty ranking.
func TopCategories(byCategory CategorySeries, n int) CategorySeries {
	ranked := slices.Clone(byCategory)
	slices.SortStableFunc(ranked, func(a, b CategoryTotal) int {
		if c := b.Amount.Abs().Cmp(a.Amount.Abs()); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ChartSpecs derives the three chart specifications from the aggregated views.
func ChartSpecs(monthly MonthlySeries, byCategory CategorySeries) *ChartSet {
	set := &ChartSet{TopCategories: TopCategories(byCategory, 10)}

	running := Money{}
	for _, flow := range monthly {
		month := flow.Month.Time()
		set.Trend.Months = append(set.Trend.Months, month)
		set.Trend.Income = append(set.Trend.Income, flow.Income.AsFloat())
		set.Trend.Expense = append(set.Trend.Expense, flow.Expense.AsFloat())
		set.Trend.Net = append(set.Trend.Net, flow.Net.AsFloat())

		running = running.Add(flow.Net)
		set.CumulativeNet.Months = append(set.CumulativeNet.Months, month)
		set.CumulativeNet.Values = append(set.CumulativeNet.Values, running.AsFloat())
	}
	return set
}

// SummaryContent computes the overall totals and the top-5 spending ranking.
// The currency is carried through so zero totals of an empty series still
// format correctly.
func SummaryContent(monthly MonthlySeries, byCategory CategorySeries, currency string) *Summary {
	s := &Summary{
		Currency:     currency,
		TotalIncome:  M(0, currency),
		TotalExpense: M(0, currency),
		TotalNet:     M(0, currency),
	}
	for _, flow := range monthly {
		s.TotalIncome = s.TotalIncome.Add(flow.Income)
		s.TotalExpense = s.TotalExpense.Add(flow.Expense)
		s.TotalNet = s.TotalNet.Add(flow.Net)
	}
	for _, c := range TopCategories(byCategory, 5) {
		s.Top5 = append(s.Top5, CategoryTotal{Category: c.Category, Amount: c.Amount.Round2()})
	}
	return s
}

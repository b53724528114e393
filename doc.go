// Package cashflow analyzes a CSV of personal financial transactions and
// derives reporting views from it.
//
// The pipeline is a straight line of pure transformations:
//   - Loading: the CSV is validated against the required schema and parsed
//     into an ordered, typed Ledger.
//   - Aggregation: the ledger is bucketed into a chronological MonthlySeries
//     (income, expense, net per month) and a CategorySeries of expense totals.
//   - Reporting: the aggregated views yield chart specifications (monthly
//     trend, top spending categories, cumulative net) and a Summary record
//     with overall totals and the top-5 ranking.
//
// Amounts follow a single sign convention: a non-negative amount is income,
// a negative one an expense, so a period's net is a plain sum. Every run
// computes everything from scratch; there is no persisted state.
//
// This package serves as the foundational logic for the `cft` command-line
// tool, which renders the chart specifications to PNG files and the summary
// to a markdown report.
package cashflow

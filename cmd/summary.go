package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/renderer"
)

type summaryCmd struct {
	csvFile  string
	currency string
	plain    bool
}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "print the summary report for a transactions CSV to the terminal"
}
func (*summaryCmd) Usage() string {
	return `cft summary -csv <file> [-currency <code>] [-plain]

  Computes the same totals and top-5 category ranking as 'report' but prints
  the summary to stdout instead of writing artifacts.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "Path to the transactions CSV file (required)")
	f.StringVar(&c.currency, "currency", "USD", "Display currency code for amounts")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown without terminal styling")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -csv is required")
		return subcommands.ExitUsageError
	}

	ledger, err := cashflow.LoadCSVFile(c.csvFile, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	monthly := cashflow.MonthlyTrends(ledger)
	byCategory := cashflow.CategoryBreakdown(ledger)
	summary := cashflow.SummaryContent(monthly, byCategory, c.currency)

	printMarkdown(renderer.SummaryMarkdown(summary), c.plain)
	return subcommands.ExitSuccess
}

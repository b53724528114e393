package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/charts"
	"github.com/etnz/cashflow/renderer"
)

type reportCmd struct {
	csvFile  string
	out      string
	currency string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "analyze a transactions CSV and write charts and a summary report"
}
func (*reportCmd) Usage() string {
	return `cft report -csv <file> [-o <dir>] [-currency <code>]

  Reads the transactions CSV, computes monthly income/expense/net trends and
  the per-category spending breakdown, and writes three chart images and
  summary_report.md into the output directory. The directory is created if
  absent; artifacts of a prior run are overwritten.

Usage Examples:
# Analyze transactions.csv into the default 'output' directory.
$ cft report -csv transactions.csv

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "Path to the transactions CSV file (required)")
	f.StringVar(&c.out, "o", "output", "Directory receiving the charts and the summary report")
	f.StringVar(&c.currency, "currency", "USD", "Display currency code for amounts")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	set := cashflow.ChartSpecs(monthly, byCategory)
	summary := cashflow.SummaryContent(monthly, byCategory, c.currency)

	sink, err := newDirSink(c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeArtifacts(sink, set, summary); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Done! Check the %q folder for charts and summary_report.md.\n", c.out)
	return subcommands.ExitSuccess
}

// writeArtifacts renders every chart spec and the summary document into the
// sink. A chart with nothing to plot is skipped, not written empty.
func writeArtifacts(sink Sink, set *cashflow.ChartSet, summary *cashflow.Summary) error {
	r := charts.NewRenderer()
	images := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"monthly_trend.png", func() ([]byte, error) { return r.MonthlyTrend(set.Trend) }},
		{"category_spend.png", func() ([]byte, error) { return r.CategorySpend(set.TopCategories) }},
		{"cumulative_net.png", func() ([]byte, error) { return r.CumulativeNet(set.CumulativeNet) }},
	}
	for _, img := range images {
		data, err := img.render()
		if err != nil {
			return err
		}
		if data == nil {
			continue
		}
		if err := sink.Write(img.name, data); err != nil {
			return err
		}
	}
	return sink.Write("summary_report.md", []byte(renderer.SummaryMarkdown(summary)))
}

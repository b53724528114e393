// Package renderer turns computed reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/cashflow"
)

// SummaryMarkdown renders the run summary as a markdown document. Total
// expenses are displayed negated, as a positive "spent" figure; the top-5
// amounts keep their sign convention (spending is negative).
func SummaryMarkdown(s *cashflow.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Personal Finance Summary")
	doc.BulletList(
		fmt.Sprintf("**Total income**: %s", s.TotalIncome),
		fmt.Sprintf("**Total expenses**: %s", s.TotalExpense.Neg()),
		fmt.Sprintf("**Net**: %s", s.TotalNet),
	)

	doc.H2("Top 5 Spending Categories")
	items := make([]string, 0, len(s.Top5))
	for _, c := range s.Top5 {
		items = append(items, fmt.Sprintf("%s: %s", c.Category, c.Amount))
	}
	doc.BulletList(items...)

	return doc.String()
}

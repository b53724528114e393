// Package charts rasterizes the chart specifications of a run into PNG images.
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/etnz/cashflow"
)

// Renderer renders chart specifications to PNG bytes. A spec with no data
// points renders to (nil, nil) so the caller can skip the artifact.
type Renderer struct{}

// NewRenderer creates a new chart renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// padSingle duplicates a lone data point one month later: go-chart refuses
// series with fewer than two points, so a single month draws as a flat segment.
func padSingle(months []time.Time, series ...[]float64) ([]time.Time, [][]float64) {
	if len(months) != 1 {
		return months, series
	}
	months = append(months, months[0].AddDate(0, 1, 0))
	for i := range series {
		series[i] = append(series[i], series[i][0])
	}
	return months, series
}

// flatRange widens a zero-delta value range, which go-chart refuses to
// render. Returns nil when the data spans a real range.
func flatRange(series ...[]float64) chart.Range {
	min, max := series[0][0], series[0][0]
	for _, values := range series {
		for _, v := range values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if min != max {
		return nil
	}
	return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
}

// MonthlyTrend renders income, expense and net as three overlaid line series.
func (r *Renderer) MonthlyTrend(spec cashflow.TrendSpec) ([]byte, error) {
	if len(spec.Months) == 0 {
		return nil, nil
	}

	months, series := padSingle(spec.Months, spec.Income, spec.Expense, spec.Net)
	income, expense, net := series[0], series[1], series[2]

	graph := chart.Chart{
		Title:  "Monthly Income / Expenses / Net",
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			Range: flatRange(income, expense, net),
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Income",
				XValues: months,
				YValues: income,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Expenses",
				XValues: months,
				YValues: expense,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Net",
				XValues: months,
				YValues: net,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 3,
				},
			},
		},
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{
			FontSize:  12,
			FontColor: chart.ColorBlack,
		}),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render monthly trend chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// CategorySpend renders the top spending categories as bars of positive
// magnitudes labeled by category.
func (r *Renderer) CategorySpend(top cashflow.CategorySeries) ([]byte, error) {
	if len(top) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(top))
	maxSpent := 0.0
	for _, c := range top {
		spent := c.Amount.Abs()
		if f := spent.AsFloat(); f > maxSpent {
			maxSpent = f
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s: %s", c.Category, spent),
			Value: spent.AsFloat(),
			Style: chart.Style{
				StrokeColor: chart.ColorRed,
				FillColor:   chart.ColorRed.WithAlpha(100),
				FontSize:    12,
				FontColor:   chart.ColorBlack,
			},
		})
	}

	graph := chart.BarChart{
		Title: "Top 10 Spending Categories",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			// An explicit range keeps a single-category chart renderable.
			Range: &chart.ContinuousRange{Min: 0, Max: maxSpent * 1.1},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category spend chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// CumulativeNet renders the running net cashflow as a single line series.
func (r *Renderer) CumulativeNet(spec cashflow.CumulativeSpec) ([]byte, error) {
	if len(spec.Months) == 0 {
		return nil, nil
	}

	months, series := padSingle(spec.Months, spec.Values)
	values := series[0]

	graph := chart.Chart{
		Title:  "Cumulative Net Cashflow",
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			Range: flatRange(values),
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Cumulative Net",
				XValues: months,
				YValues: values,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 3,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render cumulative net chart: %w", err)
	}
	return buffer.Bytes(), nil
}

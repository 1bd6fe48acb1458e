// Package charts renders insight data as PNG images.
package charts

import (
	"fmt"

	"github.com/go-analyze/charts"
	"github.com/shopspring/decimal"

	"github.com/vivekkutty-vibe/starter-bank-agent/internal/insights"
)

// DailySpendChart creates a bar chart of the 7-day spending series.
// Returns PNG image as bytes.
func DailySpendChart(series []insights.DayAmount, target decimal.Decimal) ([]byte, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no daily data to chart")
	}

	values := make([]float64, 0, len(series))
	days := make([]string, 0, len(series))
	for _, d := range series {
		values = append(values, d.Amount)
		days = append(days, d.Day)
	}

	p, err := charts.BarRender(
		[][]float64{values},
		charts.XAxisLabelsOptionFunc(days),
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Last 7 Days (target $%s/day)", target.StringFixed(0)),
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf, nil
}

// CategoryBreakdownChart creates a pie chart of per-category totals.
// Returns PNG image as bytes.
func CategoryBreakdownChart(totals map[string]decimal.Decimal) ([]byte, error) {
	if len(totals) == 0 {
		return nil, fmt.Errorf("no categories to chart")
	}

	var values []float64
	var names []string
	for name, total := range totals {
		names = append(names, name)
		values = append(values, total.InexactFloat64())
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: "Spending by Category",
		}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf, nil
}

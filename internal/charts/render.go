// Package charts renders the three aggregate series to a single HTML page:
// a bar chart of today's per-product quantities, a line chart of the
// trailing daily revenue, and a bar chart of monthly revenue. Layout and
// labels are cosmetic and owned here.
package charts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"pdv/internal/core"
)

// Renderer writes chart pages under dir.
type Renderer struct {
	dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Filename derives the deterministic chart page filename for a day.
func Filename(day core.Date) string {
	return fmt.Sprintf("graficos_vendas_%s.html", day)
}

// Render writes the chart page for the given day's series and returns the
// path of the written file.
func (r *Renderer) Render(series core.ChartSeries, day core.Date) (string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("create chart directory: %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		productBar(series.ProductsToday),
		dailyLine(series.DailyRevenue),
		monthlyBar(series.MonthlyRevenue),
	)

	path := filepath.Join(r.dir, Filename(day))
	fh, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart page: %w", err)
	}
	defer fh.Close()

	if err := page.Render(fh); err != nil {
		return "", fmt.Errorf("render chart page: %w", err)
	}

	slog.Info("Chart page rendered", "path", path, "date", day.String())
	return path, nil
}

func productBar(products []core.ProductTotal) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Produtos Vendidos no Dia"}))

	names := make([]string, 0, len(products))
	data := make([]opts.BarData, 0, len(products))
	for _, p := range products {
		names = append(names, p.Product)
		data = append(data, opts.BarData{Value: p.Quantity})
	}
	bar.SetXAxis(names).AddSeries("Quantidade Vendida", data)
	return bar
}

func dailyLine(daily []core.DailyTotal) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Valor Total das Vendas por Dia"}))

	// The series arrives most-recent-first; plot it chronologically.
	dates := make([]string, 0, len(daily))
	data := make([]opts.LineData, 0, len(daily))
	for i := len(daily) - 1; i >= 0; i-- {
		dates = append(dates, daily[i].Day.String())
		data = append(data, opts.LineData{Value: daily[i].Amount.Reais()})
	}
	line.SetXAxis(dates).AddSeries("Valor Total (R$)", data)
	return line
}

func monthlyBar(monthly []core.MonthTotal) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Valor Total das Vendas no Mês"}))

	months := make([]string, 0, len(monthly))
	data := make([]opts.BarData, 0, len(monthly))
	for _, m := range monthly {
		months = append(months, m.Month)
		data = append(data, opts.BarData{Value: m.Amount.Reais()})
	}
	bar.SetXAxis(months).AddSeries("Valor Total (R$)", data)
	return bar
}

// Package reports derives the aggregate views and the daily tabular report
// from the sales history. Everything here is read-only and recomputed on
// every call.
package reports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"pdv/internal/core"
	"pdv/internal/ledger"
)

// ErrNoSales signals a day without any committed records. Callers render a
// "no sales" notice; this is a defined outcome, not a store failure.
var ErrNoSales = errors.New("no sales recorded for date")

// DefaultTrendDays is the trailing window of the daily revenue series.
const DefaultTrendDays = 7

type Engine struct {
	history ledger.HistoryReader
}

func NewEngine(history ledger.HistoryReader) *Engine {
	return &Engine{history: history}
}

// BuildDailyReport shapes one day's records into a TabularReport with a
// trailing total. The total is re-derived as Σ quantity × unit price over
// the rows, never read from stored pre-multiplied values.
func (e *Engine) BuildDailyReport(ctx context.Context, day core.Date) (core.TabularReport, error) {
	records, err := e.history.SalesOnDate(ctx, day)
	if err != nil {
		return core.TabularReport{}, fmt.Errorf("read sales on %s: %w", day, err)
	}
	if len(records) == 0 {
		return core.TabularReport{}, fmt.Errorf("report for %s: %w", day, ErrNoSales)
	}

	report := core.TabularReport{Day: day, Rows: make([]core.ReportRow, 0, len(records))}
	var cents int64
	for _, r := range records {
		row := core.ReportRow{
			Product:   r.Product,
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
			SoldAt:    r.SoldAt,
		}
		report.Rows = append(report.Rows, row)
		cents += row.LineTotal().Cents
	}
	report.Total = core.Money{Cents: cents}

	slog.InfoContext(ctx, "Daily report built",
		"date", day.String(),
		"rows", len(report.Rows),
		"total_cents", report.Total.Cents)

	return report, nil
}

// BuildChartSeries composes the three aggregate views the chart renderer
// consumes. The queries are independent read-only scans, so they run
// concurrently; the call has no side effects and is safe to repeat.
func (e *Engine) BuildChartSeries(ctx context.Context, day core.Date, lastNDays int) (core.ChartSeries, error) {
	if lastNDays < 1 {
		lastNDays = DefaultTrendDays
	}

	var series core.ChartSeries
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		products, err := e.history.DailyProductTotals(ctx, day)
		if err != nil {
			return fmt.Errorf("product totals on %s: %w", day, err)
		}
		series.ProductsToday = products
		return nil
	})
	g.Go(func() error {
		daily, err := e.history.DailyTotalsLastNDays(ctx, lastNDays)
		if err != nil {
			return fmt.Errorf("daily totals last %d days: %w", lastNDays, err)
		}
		series.DailyRevenue = daily
		return nil
	})
	g.Go(func() error {
		monthly, err := e.history.MonthlyTotals(ctx)
		if err != nil {
			return fmt.Errorf("monthly totals: %w", err)
		}
		series.MonthlyRevenue = monthly
		return nil
	})

	if err := g.Wait(); err != nil {
		return core.ChartSeries{}, err
	}
	return series, nil
}

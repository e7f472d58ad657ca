// Package ledger declares the ports of the append-only sales history.
package ledger

import (
	"context"

	"pdv/internal/core"
)

// Ports for the durable store adapter.
type (
	// Committer persists a finalized batch of line items. Either every
	// item becomes a durable record or none does.
	Committer interface {
		Commit(ctx context.Context, items []core.LineItem) ([]core.SaleRecord, error)
	}

	// HistoryReader answers the historical queries the reporting engine
	// composes. Implementations open their own read access per call.
	HistoryReader interface {
		// SalesOnDate returns all records of one calendar day in insertion order.
		SalesOnDate(ctx context.Context, day core.Date) ([]core.SaleRecord, error)
		// DailyTotalsLastNDays returns at most n distinct dates with their
		// revenue, most recent first. Dates without records never appear.
		DailyTotalsLastNDays(ctx context.Context, n int) ([]core.DailyTotal, error)
		// MonthlyTotals returns revenue grouped by year-month, ascending.
		MonthlyTotals(ctx context.Context) ([]core.MonthTotal, error)
		// DailyProductTotals groups one day's records by product, summing
		// quantity and amount independently.
		DailyProductTotals(ctx context.Context, day core.Date) ([]core.ProductTotal, error)
	}
)

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pdv/internal/core"
	"pdv/internal/ledger"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

// timeLayout keeps sold_at in the text form SQLite's date() and strftime()
// understand, matching the schema default.
const timeLayout = "2006-01-02 15:04:05"

// Ensure SQLiteLedger implements the ledger ports
var (
	_ ledger.Committer     = (*SQLiteLedger)(nil)
	_ ledger.HistoryReader = (*SQLiteLedger)(nil)
)

// SQLiteLedger is the append-only sales history on a local SQLite file.
// No update or delete is ever issued against the sales table.
type SQLiteLedger struct {
	db *sql.DB
}

func NewSQLiteLedger(dbPath string) (*SQLiteLedger, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteLedger{db: db}, nil
}

func (l *SQLiteLedger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Commit appends one SaleRecord per line item, all stamped with the same
// commit instant. The batch runs in a single transaction: any failure rolls
// back every insert of this call.
func (l *SQLiteLedger) Commit(ctx context.Context, items []core.LineItem) ([]core.SaleRecord, error) {
	if len(items) == 0 {
		return nil, nil
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin commit transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	records := make([]core.SaleRecord, 0, len(items))
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return nil, fmt.Errorf("commit item %q: %w", li.Product, err)
		}
		res, err := tx.ExecContext(ctx,
			"INSERT INTO sales (product, quantity, unit_price_cents, sold_at) VALUES (?, ?, ?, ?)",
			li.Product, li.Quantity, li.UnitPrice.Cents, now.Format(timeLayout),
		)
		if err != nil {
			return nil, fmt.Errorf("insert sale %q: %w", li.Product, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("sale id for %q: %w", li.Product, err)
		}
		records = append(records, core.SaleRecord{
			ID:        id,
			Product:   li.Product,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			SoldAt:    now,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sales batch: %w", err)
	}

	slog.InfoContext(ctx, "Sales batch committed",
		"records", len(records),
		"total_cents", batchTotal(records))

	return records, nil
}

func batchTotal(records []core.SaleRecord) int64 {
	var cents int64
	for _, r := range records {
		cents += r.Amount().Cents
	}
	return cents
}

// SalesOnDate returns all records of one calendar day in insertion order.
func (l *SQLiteLedger) SalesOnDate(ctx context.Context, day core.Date) ([]core.SaleRecord, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, product, quantity, unit_price_cents, sold_at
		FROM sales
		WHERE date(sold_at) = ?
		ORDER BY id`, day.String())
	if err != nil {
		return nil, fmt.Errorf("query sales on %s: %w", day, err)
	}
	defer rows.Close()

	var records []core.SaleRecord
	for rows.Next() {
		var (
			r      core.SaleRecord
			soldAt string
		)
		if err := rows.Scan(&r.ID, &r.Product, &r.Quantity, &r.UnitPrice.Cents, &soldAt); err != nil {
			return nil, fmt.Errorf("scan sale record: %w", err)
		}
		r.SoldAt, err = time.ParseInLocation(timeLayout, soldAt, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse sold_at %q: %w", soldAt, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales on %s: %w", day, err)
	}
	return records, nil
}

// DailyTotalsLastNDays groups all records by calendar date and returns the
// most recent n distinct dates, descending. Fewer exist, fewer come back.
func (l *SQLiteLedger) DailyTotalsLastNDays(ctx context.Context, n int) ([]core.DailyTotal, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT date(sold_at) AS sale_date, SUM(quantity * unit_price_cents)
		FROM sales
		GROUP BY sale_date
		ORDER BY sale_date DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query daily totals: %w", err)
	}
	defer rows.Close()

	var totals []core.DailyTotal
	for rows.Next() {
		var (
			date  string
			cents int64
		)
		if err := rows.Scan(&date, &cents); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		day, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parse sale date %q: %w", date, err)
		}
		totals = append(totals, core.DailyTotal{Day: day, Amount: core.Money{Cents: cents}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily totals: %w", err)
	}
	return totals, nil
}

// MonthlyTotals groups all records by calendar year-month, ascending.
func (l *SQLiteLedger) MonthlyTotals(ctx context.Context) ([]core.MonthTotal, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT strftime('%Y-%m', sold_at) AS month, SUM(quantity * unit_price_cents)
		FROM sales
		GROUP BY month
		ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("query monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []core.MonthTotal
	for rows.Next() {
		var mt core.MonthTotal
		if err := rows.Scan(&mt.Month, &mt.Amount.Cents); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		totals = append(totals, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate monthly totals: %w", err)
	}
	return totals, nil
}

// DailyProductTotals groups one day's records by product, summing quantity
// and amount independently per product.
func (l *SQLiteLedger) DailyProductTotals(ctx context.Context, day core.Date) ([]core.ProductTotal, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT product, SUM(quantity), SUM(quantity * unit_price_cents)
		FROM sales
		WHERE date(sold_at) = ?
		GROUP BY product
		ORDER BY product`, day.String())
	if err != nil {
		return nil, fmt.Errorf("query product totals on %s: %w", day, err)
	}
	defer rows.Close()

	var totals []core.ProductTotal
	for rows.Next() {
		var pt core.ProductTotal
		if err := rows.Scan(&pt.Product, &pt.Quantity, &pt.Amount.Cents); err != nil {
			return nil, fmt.Errorf("scan product total: %w", err)
		}
		totals = append(totals, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product totals on %s: %w", day, err)
	}
	return totals, nil
}

package core

import "time"

// ProductTotal is an amount and quantity aggregated by product for one day.
type ProductTotal struct {
	Product  string
	Quantity int64
	Amount   Money
}

// DailyTotal is the revenue of one calendar day.
type DailyTotal struct {
	Day    Date
	Amount Money
}

// MonthTotal is the revenue of one calendar month ("2006-01").
type MonthTotal struct {
	Month  string
	Amount Money
}

// ReportRow is one committed sale line shaped for the daily report.
type ReportRow struct {
	Product   string
	Quantity  int64
	UnitPrice Money
	SoldAt    time.Time
}

// LineTotal re-derives the row amount from its live values.
func (r ReportRow) LineTotal() Money {
	return Money{Cents: r.Quantity * r.UnitPrice.Cents}
}

// TabularReport is the row-and-total structure consumed by the spreadsheet
// exporter for a single day. Total always equals the sum over Rows; the
// exporter renders it as a trailing row.
type TabularReport struct {
	Day   Date
	Rows  []ReportRow
	Total Money
}

// ChartSeries bundles the three aggregate views the chart renderer consumes.
// Regenerated on every request, never cached.
type ChartSeries struct {
	ProductsToday  []ProductTotal
	DailyRevenue   []DailyTotal
	MonthlyRevenue []MonthTotal
}

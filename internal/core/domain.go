package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is a calendar day used as a grouping key for reports.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// LineItem is a single entry of the sale being assembled. Immutable
	// once added to a cart.
	LineItem struct {
		Product   string
		Quantity  int64
		UnitPrice Money
	}

	// SaleRecord is a committed line item. Records are independent facts:
	// a multi-item sale produces one record per line with no grouping key.
	SaleRecord struct {
		ID        int64
		Product   string
		Quantity  int64
		UnitPrice Money
		SoldAt    time.Time
	}
)

var (
	ErrEmptyProduct    = errors.New("empty product")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidPrice    = errors.New("invalid unit price")
)

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day in local time.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses an ISO calendar date (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return DateOf(t), nil
}

// String returns the ISO form used by queries and report filenames.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (li LineItem) Validate() error {
	if strings.TrimSpace(li.Product) == "" {
		return ErrEmptyProduct
	}
	if li.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if err := li.UnitPrice.Validate(); err != nil {
		return err
	}
	return nil
}

// LineTotal re-derives quantity × unit price. Totals are always computed
// from live values, never stored pre-multiplied.
func (li LineItem) LineTotal() Money {
	return Money{Cents: li.Quantity * li.UnitPrice.Cents}
}

// Amount is the revenue contributed by this record.
func (r SaleRecord) Amount() Money {
	return Money{Cents: r.Quantity * r.UnitPrice.Cents}
}

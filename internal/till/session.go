// Package till orchestrates the active sale: cart mutations, finalize, and
// the handoff to the ledger.
package till

import (
	"context"
	"fmt"
	"log/slog"

	"pdv/internal/core"
	"pdv/internal/ledger"
)

// Session owns the single live cart of the till. Created at session start;
// the cart is cleared on finalize or cancel.
type Session struct {
	cart   *core.Cart
	ledger ledger.Committer
}

// ConfirmationLine is one sold line of the operator-facing summary.
type ConfirmationLine struct {
	Product   string
	Quantity  int64
	UnitPrice core.Money
}

// Confirmation summarizes a committed sale for display. A finalize of an
// empty cart yields a confirmation with no lines and nothing persisted.
type Confirmation struct {
	Lines []ConfirmationLine
	Total core.Money
}

func (c Confirmation) Empty() bool {
	return len(c.Lines) == 0
}

func NewSession(committer ledger.Committer) *Session {
	return &Session{cart: core.NewCart(), ledger: committer}
}

// AddItem validates and appends a line item to the live cart.
func (s *Session) AddItem(product string, quantity int64, unitPrice core.Money) error {
	return s.cart.AddItem(product, quantity, unitPrice)
}

// Total is the running total of the live cart, for display after every
// mutation.
func (s *Session) Total() core.Money {
	return s.cart.Total()
}

// Items returns a snapshot of the live cart for display.
func (s *Session) Items() []core.LineItem {
	return s.cart.Items()
}

// Cancel discards the live cart without persisting.
func (s *Session) Cancel() {
	s.cart.Reset()
}

// Finalize commits the cart's items to the ledger and clears the cart.
// On a commit failure the cart is left intact so the operator can retry
// without re-entering items. An empty cart is a no-op.
func (s *Session) Finalize(ctx context.Context) (Confirmation, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return Confirmation{}, nil
	}

	records, err := s.ledger.Commit(ctx, items)
	if err != nil {
		return Confirmation{}, fmt.Errorf("commit sale: %w", err)
	}

	// Only now that the batch is durable does the cart clear.
	s.cart.Finalize()

	conf := Confirmation{Lines: make([]ConfirmationLine, 0, len(records))}
	var cents int64
	for _, r := range records {
		conf.Lines = append(conf.Lines, ConfirmationLine{
			Product:   r.Product,
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
		})
		cents += r.Amount().Cents
	}
	conf.Total = core.Money{Cents: cents}

	slog.InfoContext(ctx, "Sale finalized",
		"lines", len(conf.Lines),
		"total_cents", conf.Total.Cents)

	return conf, nil
}

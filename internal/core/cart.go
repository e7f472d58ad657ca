package core

// Cart holds the line items of the sale currently being assembled.
// Exactly one cart is live per till session and all mutations come from a
// single control thread, so no locking happens here.
type Cart struct {
	items []LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem validates and appends a line item. On a validation error the
// cart is left unchanged.
func (c *Cart) AddItem(product string, quantity int64, unitPrice Money) error {
	li := LineItem{Product: product, Quantity: quantity, UnitPrice: unitPrice}
	if err := li.Validate(); err != nil {
		return err
	}
	c.items = append(c.items, li)
	return nil
}

// Items returns a snapshot of the current items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Total recomputes the running total from live items every call, so it can
// never drift from the cart contents.
func (c *Cart) Total() Money {
	var cents int64
	for _, li := range c.items {
		cents += li.LineTotal().Cents
	}
	return Money{Cents: cents}
}

// Finalize returns a snapshot of all current items and empties the cart in
// the same step. Finalizing an empty cart returns an empty slice.
func (c *Cart) Finalize() []LineItem {
	snapshot := c.items
	c.items = nil
	return snapshot
}

// Reset discards all items without persisting anything.
func (c *Cart) Reset() {
	c.items = nil
}

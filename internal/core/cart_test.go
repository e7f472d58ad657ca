package core

import "testing"

func TestCartRunningTotal(t *testing.T) {
	c := NewCart()
	adds := []struct {
		product string
		qty     int64
		cents   int64
	}{
		{"Coffee", 2, 450},
		{"Muffin", 1, 325},
		{"Tea", 5, 210},
	}
	var want int64
	for _, a := range adds {
		if err := c.AddItem(a.product, a.qty, Money{Cents: a.cents}); err != nil {
			t.Fatalf("add %s: %v", a.product, err)
		}
		want += a.qty * a.cents
		if got := c.Total().Cents; got != want {
			t.Fatalf("after %s expected total %d, got %d", a.product, want, got)
		}
	}
	if want != 2275 {
		t.Fatalf("fixture expected 2275, got %d", want)
	}
}

func TestCartRejectsInvalidItems(t *testing.T) {
	c := NewCart()
	if err := c.AddItem("Coffee", 2, Money{Cents: 450}); err != nil {
		t.Fatalf("valid add failed: %v", err)
	}

	bads := []struct {
		product string
		qty     int64
		cents   int64
	}{
		{"", 1, 100},
		{"Tea", 0, 100},
		{"Tea", -1, 100},
		{"Tea", 1, -50},
	}
	for i, b := range bads {
		if err := c.AddItem(b.product, b.qty, Money{Cents: b.cents}); err == nil {
			t.Fatalf("case %d expected error", i)
		}
		if c.Len() != 1 || c.Total().Cents != 900 {
			t.Fatalf("case %d changed cart state: len=%d total=%d", i, c.Len(), c.Total().Cents)
		}
	}
}

func TestCartFinalize(t *testing.T) {
	c := NewCart()
	_ = c.AddItem("Coffee", 2, Money{Cents: 450})
	_ = c.AddItem("Tea", 1, Money{Cents: 210})

	items := c.Finalize()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if c.Len() != 0 || c.Total().Cents != 0 {
		t.Fatalf("cart not cleared: len=%d total=%d", c.Len(), c.Total().Cents)
	}
	if items[0].Product != "Coffee" || items[1].Product != "Tea" {
		t.Fatalf("snapshot lost insertion order: %+v", items)
	}
}

func TestCartFinalizeEmptyIdempotent(t *testing.T) {
	c := NewCart()
	for i := 0; i < 3; i++ {
		if items := c.Finalize(); len(items) != 0 {
			t.Fatalf("call %d expected empty snapshot, got %d items", i, len(items))
		}
	}
}

func TestCartReset(t *testing.T) {
	c := NewCart()
	_ = c.AddItem("Coffee", 2, Money{Cents: 450})
	c.Reset()
	if c.Len() != 0 || c.Total().Cents != 0 {
		t.Fatalf("reset did not clear cart")
	}
}

func TestCartItemsIsSnapshot(t *testing.T) {
	c := NewCart()
	_ = c.AddItem("Coffee", 2, Money{Cents: 450})
	items := c.Items()
	items[0].Product = "Mutated"
	if c.Items()[0].Product != "Coffee" {
		t.Fatalf("Items exposed internal state")
	}
}

package machine

import (
	"errors"
	"testing"
)

func TestInventory_RestockAndLookup(t *testing.T) {
	inv := NewInventory()
	inv.Restock("A", "cola", 150, 3)

	it, ok := inv.Lookup("A")
	if !ok {
		t.Fatal("expected item A")
	}
	if it.Description != "cola" || it.Price != 150 || it.Quantity != 3 {
		t.Errorf("unexpected item: %+v", it)
	}

	// Restock overwrites the whole record.
	inv.Restock("A", "diet cola", 175, 1)
	it, _ = inv.Lookup("A")
	if it.Description != "diet cola" || it.Price != 175 || it.Quantity != 1 {
		t.Errorf("restock did not overwrite: %+v", it)
	}
}

func TestInventory_Decrement(t *testing.T) {
	inv := NewInventory()
	inv.Restock("B", "chips", 65, 1)

	if err := inv.Decrement("B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := inv.Decrement("B"); !errors.Is(err, ErrSoldOut) {
		t.Errorf("expected ErrSoldOut, got %v", err)
	}
	if err := inv.Decrement("Z"); !errors.Is(err, ErrUnknownSelector) {
		t.Errorf("expected ErrUnknownSelector, got %v", err)
	}
	if it, _ := inv.Lookup("B"); it.Quantity != 0 {
		t.Errorf("quantity should stop at 0, got %d", it.Quantity)
	}
}

func TestInventory_ItemsSorted(t *testing.T) {
	inv := NewInventory()
	inv.Restock("C", "candy", 95, 1)
	inv.Restock("A", "cola", 150, 1)
	inv.Restock("B", "chips", 65, 1)

	items := inv.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"A", "B", "C"} {
		if items[i].Selector != want {
			t.Errorf("position %d: expected %s, got %s", i, want, items[i].Selector)
		}
	}
}

func TestInventory_Reset(t *testing.T) {
	inv := NewInventory()
	inv.Restock("A", "cola", 150, 1)
	inv.Reset()
	if len(inv.Items()) != 0 {
		t.Errorf("expected empty inventory, got %v", inv.Items())
	}
}

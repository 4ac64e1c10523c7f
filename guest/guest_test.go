package guest

import (
	"testing"
	"time"
)

func line(productID uint, size string, qty int) CartLine {
	return CartLine{ProductID: productID, Size: size, Quantity: qty}
}

func TestUpsertLineNewLine(t *testing.T) {
	lines := UpsertLine(nil, line(1, "M", 2))
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("lines = %+v", lines)
	}
}

func TestUpsertLineSameProductDifferentSize(t *testing.T) {
	lines := UpsertLine(nil, line(1, "M", 2))
	lines = UpsertLine(lines, line(1, "L", 1))
	if len(lines) != 2 {
		t.Fatalf("want 2 distinct lines, got %d", len(lines))
	}
}

func TestUpsertLineUpdatesQuantity(t *testing.T) {
	lines := UpsertLine(nil, line(1, "M", 2))
	lines = UpsertLine(lines, line(1, "M", 5))
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", lines[0].Quantity)
	}
}

func TestUpsertLineZeroQuantityRemoves(t *testing.T) {
	lines := UpsertLine(nil, line(1, "M", 2))
	lines = UpsertLine(lines, line(1, "M", 0))
	if len(lines) != 0 {
		t.Fatalf("want empty cart, got %+v", lines)
	}
	// Zero quantity for an absent line stays a no-op.
	if got := UpsertLine(nil, line(9, "S", -1)); len(got) != 0 {
		t.Fatalf("want empty cart, got %+v", got)
	}
}

func TestRemoveLineMatchesFullIdentity(t *testing.T) {
	lines := []CartLine{line(1, "M", 1), line(1, "L", 1)}
	lines = RemoveLine(lines, 1, "M", "")
	if len(lines) != 1 || lines[0].Size != "L" {
		t.Fatalf("lines = %+v", lines)
	}
	// Removing an absent line changes nothing.
	lines = RemoveLine(lines, 2, "M", "")
	if len(lines) != 1 {
		t.Fatalf("lines = %+v", lines)
	}
}

func TestAddIDDeduplicates(t *testing.T) {
	ids := AddID(nil, 7)
	ids = AddID(ids, 7)
	if len(ids) != 1 {
		t.Fatalf("ids = %v, want single entry", ids)
	}
}

func TestRemoveIDAbsentNoop(t *testing.T) {
	ids := []uint{1, 2}
	if got := RemoveID(ids, 3); len(got) != 2 {
		t.Fatalf("ids = %v", got)
	}
	if got := RemoveID(ids, 1); len(got) != 1 || got[0] != 2 {
		t.Fatalf("ids = %v", got)
	}
}

func TestAttributionExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := Attribution{Code: "JANE20", ExpiresAt: now.Add(-time.Hour)}
	if !a.Expired(now) {
		t.Error("attribution past its expiry should be expired")
	}
	a.ExpiresAt = now.Add(time.Hour)
	if a.Expired(now) {
		t.Error("attribution before its expiry should not be expired")
	}
}

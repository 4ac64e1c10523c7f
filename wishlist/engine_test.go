package wishlist

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/nisharmultani/girlsecret-sub000/guest"
)

// fakeRecords is an in-memory Records with per-product failure injection.
type fakeRecords struct {
	mu       sync.Mutex
	lists    map[string][]uint
	failAdds map[uint]error
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{lists: make(map[string][]uint), failAdds: make(map[uint]error)}
}

func (f *fakeRecords) ListWishlist(ctx context.Context, userID string) ([]uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uint(nil), f.lists[userID]...), nil
}

func (f *fakeRecords) AddWishlist(ctx context.Context, userID string, productID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failAdds[productID]; err != nil {
		return err
	}
	for _, id := range f.lists[userID] {
		if id == productID {
			return nil
		}
	}
	f.lists[userID] = append(f.lists[userID], productID)
	return nil
}

func (f *fakeRecords) RemoveWishlist(ctx context.Context, userID string, productID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, id := range f.lists[userID] {
		if id == productID {
			f.lists[userID] = append(f.lists[userID][:i], f.lists[userID][i+1:]...)
			return nil
		}
	}
	return nil
}

func sorted(ids []uint) []uint {
	out := append([]uint(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func setup(t *testing.T) (*Engine, *fakeRecords, *guest.MemoryStore) {
	t.Helper()
	records := newFakeRecords()
	guests := guest.NewMemoryStore()
	return NewEngine(records, guests, 0), records, guests
}

func TestMergeMovesGuestWishlistToUser(t *testing.T) {
	ctx := context.Background()
	engine, _, guests := setup(t)
	guests.SaveWishlist(ctx, "g1", []uint{3, 1, 2})

	got, err := engine.MergeGuestWishlist(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	want := []uint{1, 2, 3}
	g := sorted(got)
	if len(g) != 3 || g[0] != want[0] || g[1] != want[1] || g[2] != want[2] {
		t.Errorf("merged list = %v, want %v in any order", got, want)
	}

	left, _ := guests.Wishlist(ctx, "g1")
	if len(left) != 0 {
		t.Errorf("guest wishlist not cleared: %v", left)
	}
}

func TestMergeDedupsAgainstExistingEntries(t *testing.T) {
	ctx := context.Background()
	engine, records, guests := setup(t)
	records.lists["u1"] = []uint{1}
	guests.SaveWishlist(ctx, "g1", []uint{1, 2})

	got, err := engine.MergeGuestWishlist(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("merged list = %v, want two entries", got)
	}
}

func TestMergeFailureKeepsGuestCopy(t *testing.T) {
	ctx := context.Background()
	engine, records, guests := setup(t)
	records.failAdds[2] = errors.New("store unavailable")
	guests.SaveWishlist(ctx, "g1", []uint{1, 2, 3})

	if _, err := engine.MergeGuestWishlist(ctx, "u1", "g1"); err == nil {
		t.Fatal("merge should fail when any add fails")
	}

	left, _ := guests.Wishlist(ctx, "g1")
	if len(left) != 3 {
		t.Errorf("guest wishlist = %v, want all 3 kept for retry", left)
	}

	// A retry after the store recovers completes the merge without dupes.
	delete(records.failAdds, 2)
	got, err := engine.MergeGuestWishlist(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("retry merge: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("retried merge list = %v, want 3 entries", got)
	}
}

func TestMergeEmptyGuestListJustLoads(t *testing.T) {
	ctx := context.Background()
	engine, records, _ := setup(t)
	records.lists["u1"] = []uint{5}

	got, err := engine.MergeGuestWishlist(ctx, "u1", "g-empty")
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("list = %v, want [5]", got)
	}
}

func TestSyncRules(t *testing.T) {
	ctx := context.Background()
	engine, records, guests := setup(t)
	records.lists["u1"] = []uint{9}
	guests.SaveWishlist(ctx, "g1", []uint{4})

	// Authenticated with pending guest items: merge.
	got, err := engine.Sync(ctx, Identity{UserID: "u1", GuestID: "g1"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("synced list = %v, want merged 2 entries", got)
	}

	// Guest only: plain guest load.
	guests.SaveWishlist(ctx, "g2", []uint{7})
	got, err = engine.Sync(ctx, Identity{GuestID: "g2"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("guest sync = %v, want [7]", got)
	}
}

func TestAddIsIdempotentBothPaths(t *testing.T) {
	ctx := context.Background()
	engine, records, _ := setup(t)

	user := Identity{UserID: "u1"}
	engine.Add(ctx, user, 5)
	engine.Add(ctx, user, 5)
	if got := records.lists["u1"]; len(got) != 1 {
		t.Errorf("user wishlist = %v, want exactly one entry", got)
	}

	g := Identity{GuestID: "g1"}
	engine.Add(ctx, g, 5)
	engine.Add(ctx, g, 5)
	got, _ := engine.Load(ctx, g)
	if len(got) != 1 {
		t.Errorf("guest wishlist = %v, want exactly one entry", got)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	engine, _, _ := setup(t)

	if err := engine.Remove(ctx, Identity{UserID: "u1"}, 42); err != nil {
		t.Errorf("removing absent id errored: %v", err)
	}
	if err := engine.Remove(ctx, Identity{GuestID: "g1"}, 42); err != nil {
		t.Errorf("removing absent id errored: %v", err)
	}
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	engine, _, _ := setup(t)
	id := Identity{GuestID: "g1"}

	on, err := engine.Toggle(ctx, id, 3)
	if err != nil || !on {
		t.Fatalf("first toggle = (%v, %v), want (true, nil)", on, err)
	}
	on, err = engine.Toggle(ctx, id, 3)
	if err != nil || on {
		t.Fatalf("second toggle = (%v, %v), want (false, nil)", on, err)
	}
	got, _ := engine.Load(ctx, id)
	if len(got) != 0 {
		t.Errorf("wishlist = %v, want empty after double toggle", got)
	}
}

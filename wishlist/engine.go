// Package wishlist reconciles the two wishlist representations: the guest
// store's product ID array and the per-user entries in the record store.
package wishlist

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nisharmultani/girlsecret-sub000/guest"
)

// Records is the slice of the record store the engine needs.
type Records interface {
	ListWishlist(ctx context.Context, userID string) ([]uint, error)
	AddWishlist(ctx context.Context, userID string, productID uint) error
	RemoveWishlist(ctx context.Context, userID string, productID uint) error
}

// Identity is who the wishlist belongs to: a signed-in user or a guest.
type Identity struct {
	UserID  string
	GuestID string
}

func (id Identity) Authenticated() bool { return id.UserID != "" }

type Engine struct {
	records Records
	guests  guest.Store
	// settle is slept after a merge before reloading, to absorb the record
	// store's read-after-write latency.
	settle time.Duration
}

func NewEngine(records Records, guests guest.Store, settle time.Duration) *Engine {
	return &Engine{records: records, guests: guests, settle: settle}
}

// Load reads the wishlist for the identity: the record store for users, the
// guest store otherwise.
func (e *Engine) Load(ctx context.Context, id Identity) ([]uint, error) {
	if id.Authenticated() {
		return e.records.ListWishlist(ctx, id.UserID)
	}
	return e.guests.Wishlist(ctx, id.GuestID)
}

// MergeGuestWishlist transfers the guest's wishlist into the user's
// server-side one. The per-product adds run concurrently; only when every add
// succeeds is the guest copy cleared and the merged list reloaded. On any
// failure the guest copy is kept so the merge can be retried. Adds that
// already landed are not rolled back, which is safe because the storage layer
// dedups by product ID.
func (e *Engine) MergeGuestWishlist(ctx context.Context, userID, guestID string) ([]uint, error) {
	ids, err := e.guests.Wishlist(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return e.records.ListWishlist(ctx, userID)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, productID := range ids {
		productID := productID
		g.Go(func() error {
			return e.records.AddWishlist(gctx, userID, productID)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := e.guests.ClearWishlist(ctx, guestID); err != nil {
		return nil, err
	}
	if e.settle > 0 {
		time.Sleep(e.settle)
	}
	return e.records.ListWishlist(ctx, userID)
}

// Sync runs the once-per-identity-change rule: a signed-in user with a
// pending guest wishlist gets a merge, everyone else a plain load.
func (e *Engine) Sync(ctx context.Context, id Identity) ([]uint, error) {
	if id.Authenticated() && id.GuestID != "" {
		pending, err := e.guests.Wishlist(ctx, id.GuestID)
		if err != nil {
			return nil, err
		}
		if len(pending) > 0 {
			return e.MergeGuestWishlist(ctx, id.UserID, id.GuestID)
		}
	}
	return e.Load(ctx, id)
}

// Add puts a product on the identity's wishlist. Both paths are idempotent
// by product ID.
func (e *Engine) Add(ctx context.Context, id Identity, productID uint) error {
	if id.Authenticated() {
		return e.records.AddWishlist(ctx, id.UserID, productID)
	}
	ids, err := e.guests.Wishlist(ctx, id.GuestID)
	if err != nil {
		return err
	}
	return e.guests.SaveWishlist(ctx, id.GuestID, guest.AddID(ids, productID))
}

// Remove takes a product off the wishlist; removing an absent one is a no-op.
func (e *Engine) Remove(ctx context.Context, id Identity, productID uint) error {
	if id.Authenticated() {
		return e.records.RemoveWishlist(ctx, id.UserID, productID)
	}
	ids, err := e.guests.Wishlist(ctx, id.GuestID)
	if err != nil {
		return err
	}
	return e.guests.SaveWishlist(ctx, id.GuestID, guest.RemoveID(ids, productID))
}

// Toggle removes the product if present, adds it otherwise, and returns
// whether it is on the wishlist afterwards.
func (e *Engine) Toggle(ctx context.Context, id Identity, productID uint) (bool, error) {
	ids, err := e.Load(ctx, id)
	if err != nil {
		return false, err
	}
	if guest.ContainsID(ids, productID) {
		return false, e.Remove(ctx, id, productID)
	}
	return true, e.Add(ctx, id, productID)
}

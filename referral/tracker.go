// Package referral attributes traffic and sales to influencer codes.
// Attribution sticks to a shopper for a limited window; clicks and
// conversions are counted on the referral record itself.
package referral

import (
	"context"
	"log"
	"time"

	"github.com/nisharmultani/girlsecret-sub000/guest"
	"github.com/nisharmultani/girlsecret-sub000/models"
)

// Records is the slice of the record store the tracker needs.
type Records interface {
	GetReferralByCode(ctx context.Context, code string) (*models.Referral, error)
	IncrementClicks(ctx context.Context, code string) error
	RecordConversion(ctx context.Context, code string, orderTotal float64) error
}

type Tracker struct {
	records Records
	guests  guest.Store
	ttl     time.Duration
	now     func() time.Time
}

func NewTracker(records Records, guests guest.Store, ttl time.Duration) *Tracker {
	return &Tracker{records: records, guests: guests, ttl: ttl, now: time.Now}
}

// Track handles a shopper arriving with a referral code in the URL. An
// unknown or inactive code is silently ignored. A valid one is attributed to
// the shopper's scope for the TTL window, its click counter is bumped
// best-effort, and the record is returned so its paired promo code can be
// auto-applied.
func (t *Tracker) Track(ctx context.Context, scopeID, code string) (*models.Referral, error) {
	rec, err := t.records.GetReferralByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.Active {
		return nil, nil
	}

	now := t.now()
	a := guest.Attribution{Code: rec.Code, ClickedAt: now, ExpiresAt: now.Add(t.ttl)}
	if err := t.guests.SaveAttribution(ctx, scopeID, a); err != nil {
		return nil, err
	}

	// Click tracking is best-effort; the shopper never waits on it.
	go func() {
		if err := t.records.IncrementClicks(context.Background(), rec.Code); err != nil {
			log.Printf("referral: click increment for %s failed: %v", rec.Code, err)
		}
	}()

	return rec, nil
}

// Active returns the referral currently attributed to the scope, fetched
// fresh from the record store so promo code and influencer name are current.
// Expired attributions are purged and read as none. An attribution whose
// record has since gone missing or inactive also reads as none.
func (t *Tracker) Active(ctx context.Context, scopeID string) (*models.Referral, error) {
	a, err := t.guests.Attribution(ctx, scopeID)
	if err != nil || a == nil {
		return nil, err
	}
	if a.Expired(t.now()) {
		if err := t.guests.ClearAttribution(ctx, scopeID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	rec, err := t.records.GetReferralByCode(ctx, a.Code)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.Active {
		return nil, nil
	}
	return rec, nil
}

// Adopt moves a guest's attribution to the user's scope at login, so the
// referral still converts after the shopper signs in. Expired or absent
// attributions move nothing.
func (t *Tracker) Adopt(ctx context.Context, guestScope, userScope string) error {
	a, err := t.guests.Attribution(ctx, guestScope)
	if err != nil || a == nil {
		return err
	}
	if a.Expired(t.now()) {
		return t.guests.ClearAttribution(ctx, guestScope)
	}
	if err := t.guests.SaveAttribution(ctx, userScope, *a); err != nil {
		return err
	}
	return t.guests.ClearAttribution(ctx, guestScope)
}

// Convert credits the order total to the scope's active referral, if any.
// Returns the credited code, empty when there was nothing to credit.
func (t *Tracker) Convert(ctx context.Context, scopeID string, orderTotal float64) (string, error) {
	rec, err := t.Active(ctx, scopeID)
	if err != nil || rec == nil {
		return "", err
	}
	if err := t.records.RecordConversion(ctx, rec.Code, orderTotal); err != nil {
		return "", err
	}
	return rec.Code, nil
}

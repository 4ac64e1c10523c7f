package referral

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nisharmultani/girlsecret-sub000/guest"
	"github.com/nisharmultani/girlsecret-sub000/models"
)

type fakeRecords struct {
	mu       sync.Mutex
	byCode   map[string]*models.Referral
	clicked  chan string
}

func newFakeRecords(recs ...*models.Referral) *fakeRecords {
	f := &fakeRecords{byCode: make(map[string]*models.Referral), clicked: make(chan string, 8)}
	for _, r := range recs {
		f.byCode[strings.ToUpper(r.Code)] = r
	}
	return f
}

func (f *fakeRecords) GetReferralByCode(ctx context.Context, code string) (*models.Referral, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byCode[strings.ToUpper(code)]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRecords) IncrementClicks(ctx context.Context, code string) error {
	f.mu.Lock()
	f.byCode[strings.ToUpper(code)].TotalClicks++
	f.mu.Unlock()
	f.clicked <- code
	return nil
}

func (f *fakeRecords) RecordConversion(ctx context.Context, code string, orderTotal float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.byCode[strings.ToUpper(code)]
	r.TotalConversions++
	r.TotalRevenue += orderTotal
	r.TotalCommission += orderTotal * r.CommissionRate / 100
	return nil
}

func jane() *models.Referral {
	return &models.Referral{
		Code:           "JANE20",
		InfluencerName: "Jane",
		PromoCode:      "SAVE20",
		CommissionRate: 10,
		Active:         true,
	}
}

func newTracker(records Records, guests guest.Store, now time.Time) *Tracker {
	tr := NewTracker(records, guests, 30*24*time.Hour)
	tr.now = func() time.Time { return now }
	return tr
}

func TestTrackAttributesAndCountsClick(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords(jane())
	guests := guest.NewMemoryStore()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tr := newTracker(records, guests, now)

	rec, err := tr.Track(ctx, "g1", "jane20")
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if rec == nil || rec.PromoCode != "SAVE20" {
		t.Fatalf("rec = %+v, want JANE20 with promo SAVE20", rec)
	}

	a, _ := guests.Attribution(ctx, "g1")
	if a == nil || a.Code != "JANE20" {
		t.Fatalf("attribution = %+v", a)
	}
	if want := now.Add(30 * 24 * time.Hour); !a.ExpiresAt.Equal(want) {
		t.Errorf("expiry = %v, want %v", a.ExpiresAt, want)
	}

	select {
	case <-records.clicked:
	case <-time.After(time.Second):
		t.Error("click increment never fired")
	}
}

func TestTrackUnknownOrInactiveIgnored(t *testing.T) {
	ctx := context.Background()
	inactive := jane()
	inactive.Active = false
	records := newFakeRecords(inactive)
	guests := guest.NewMemoryStore()
	tr := newTracker(records, guests, time.Now())

	if rec, err := tr.Track(ctx, "g1", "NOPE"); err != nil || rec != nil {
		t.Errorf("unknown code: rec=%v err=%v, want nil,nil", rec, err)
	}
	if rec, err := tr.Track(ctx, "g1", "JANE20"); err != nil || rec != nil {
		t.Errorf("inactive code: rec=%v err=%v, want nil,nil", rec, err)
	}
	if a, _ := guests.Attribution(ctx, "g1"); a != nil {
		t.Errorf("attribution saved for invalid code: %+v", a)
	}
}

func TestActiveExpiredIsPurged(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords(jane())
	guests := guest.NewMemoryStore()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tr := newTracker(records, guests, now)

	// Attributed 31 days ago.
	guests.SaveAttribution(ctx, "g1", guest.Attribution{
		Code:      "JANE20",
		ClickedAt: now.Add(-31 * 24 * time.Hour),
		ExpiresAt: now.Add(-24 * time.Hour),
	})

	rec, err := tr.Active(ctx, "g1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if rec != nil {
		t.Errorf("expired attribution returned %+v, want nil", rec)
	}
	if a, _ := guests.Attribution(ctx, "g1"); a != nil {
		t.Errorf("expired attribution not purged: %+v", a)
	}
}

func TestActiveRefetchesFreshRecord(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords(jane())
	guests := guest.NewMemoryStore()
	now := time.Now()
	tr := newTracker(records, guests, now)

	guests.SaveAttribution(ctx, "g1", guest.Attribution{
		Code: "JANE20", ClickedAt: now, ExpiresAt: now.Add(time.Hour),
	})

	// The promo code changes server-side after attribution.
	records.byCode["JANE20"].PromoCode = "NEWPROMO"

	rec, err := tr.Active(ctx, "g1")
	if err != nil || rec == nil {
		t.Fatalf("active: rec=%v err=%v", rec, err)
	}
	if rec.PromoCode != "NEWPROMO" {
		t.Errorf("promo = %q, want the fresh NEWPROMO", rec.PromoCode)
	}

	// Record deactivated after attribution: reads as none.
	records.byCode["JANE20"].Active = false
	if rec, _ := tr.Active(ctx, "g1"); rec != nil {
		t.Errorf("deactivated record returned %+v, want nil", rec)
	}
}

func TestConvertCreditsCommission(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords(jane())
	guests := guest.NewMemoryStore()
	now := time.Now()
	tr := newTracker(records, guests, now)

	guests.SaveAttribution(ctx, "g1", guest.Attribution{
		Code: "JANE20", ClickedAt: now, ExpiresAt: now.Add(time.Hour),
	})

	code, err := tr.Convert(ctx, "g1", 80)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if code != "JANE20" {
		t.Errorf("credited code = %q, want JANE20", code)
	}

	r := records.byCode["JANE20"]
	if r.TotalConversions != 1 || r.TotalRevenue != 80 {
		t.Errorf("conversions=%d revenue=%v, want 1 and 80", r.TotalConversions, r.TotalRevenue)
	}
	if r.TotalCommission != 8 { // 10% of 80
		t.Errorf("commission = %v, want 8", r.TotalCommission)
	}
}

func TestAdoptMovesAttributionToUserScope(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords(jane())
	guests := guest.NewMemoryStore()
	now := time.Now()
	tr := newTracker(records, guests, now)

	guests.SaveAttribution(ctx, "g1", guest.Attribution{
		Code: "JANE20", ClickedAt: now, ExpiresAt: now.Add(time.Hour),
	})

	if err := tr.Adopt(ctx, "g1", "u1"); err != nil {
		t.Fatalf("adopt: %v", err)
	}
	if a, _ := guests.Attribution(ctx, "g1"); a != nil {
		t.Errorf("guest attribution still present: %+v", a)
	}
	rec, err := tr.Active(ctx, "u1")
	if err != nil || rec == nil || rec.Code != "JANE20" {
		t.Errorf("user attribution: rec=%+v err=%v", rec, err)
	}
}

func TestAdoptExpiredMovesNothing(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords(jane())
	guests := guest.NewMemoryStore()
	now := time.Now()
	tr := newTracker(records, guests, now)

	guests.SaveAttribution(ctx, "g1", guest.Attribution{
		Code: "JANE20", ExpiresAt: now.Add(-time.Hour),
	})

	if err := tr.Adopt(ctx, "g1", "u1"); err != nil {
		t.Fatalf("adopt: %v", err)
	}
	if rec, _ := tr.Active(ctx, "u1"); rec != nil {
		t.Errorf("expired attribution adopted: %+v", rec)
	}
}

func TestConvertWithoutAttributionIsNoop(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords(jane())
	tr := newTracker(records, guest.NewMemoryStore(), time.Now())

	code, err := tr.Convert(ctx, "g-none", 50)
	if err != nil || code != "" {
		t.Errorf("convert = (%q, %v), want no credit", code, err)
	}
	if records.byCode["JANE20"].TotalConversions != 0 {
		t.Error("conversion recorded without attribution")
	}
}

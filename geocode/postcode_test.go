package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/postcodes/SW1A 1AA" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":200,"result":{"postcode":"SW1A 1AA","region":"London","admin_district":"Westminster","country":"England"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.Lookup(context.Background(), "SW1A 1AA")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if res == nil || res.Region != "London" || res.AdminDistrict != "Westminster" {
		t.Errorf("result = %+v", res)
	}
}

func TestLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).Lookup(context.Background(), "ZZ99 9ZZ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if res != nil {
		t.Errorf("unknown postcode returned %+v, want nil", res)
	}
}

func TestLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Lookup(context.Background(), "SW1A 1AA"); err == nil {
		t.Fatal("want error on 500")
	}
}

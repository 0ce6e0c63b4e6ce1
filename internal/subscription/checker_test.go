package subscription

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fifa4x4/predictor-api/internal/cache"
)

func newTestChecker(t *testing.T, handler http.HandlerFunc) *Checker {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewChecker("test-token", "@fifa4x4", cache.New(true), nil)
	c.baseURL = srv.URL
	return c
}

func TestIsSubscribedUnconfigured(t *testing.T) {
	c := NewChecker("", "", cache.New(true), nil)
	if !c.IsSubscribed(context.Background(), 42, "user") {
		t.Error("unconfigured checker must grant access")
	}
}

func TestIsSubscribedStatuses(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"member", true},
		{"administrator", true},
		{"creator", true},
		{"left", false},
		{"kicked", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"ok":true,"result":{"status":%q}}`, tt.status)
			})
			if got := c.IsSubscribed(context.Background(), 7, "user"); got != tt.want {
				t.Errorf("IsSubscribed() with status %q = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestIsSubscribedFailOpen(t *testing.T) {
	c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	if !c.IsSubscribed(context.Background(), 7, "user") {
		t.Error("upstream failure must grant access")
	}
}

func TestIsSubscribedCached(t *testing.T) {
	calls := 0
	c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"ok":true,"result":{"status":"member"}}`)
	})

	ctx := context.Background()
	c.IsSubscribed(ctx, 7, "user")
	c.IsSubscribed(ctx, 7, "user")

	if calls != 1 {
		t.Errorf("upstream called %d times, want 1 (second check served from cache)", calls)
	}
}

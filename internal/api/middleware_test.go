package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIPLimiterEvictsIdleEntries(t *testing.T) {
	l := newIPLimiter(60, time.Minute)

	l.getLimiter("10.0.0.1")
	l.getLimiter("10.0.0.2")

	// Age out the first IP, then touch the second so only the first is idle.
	l.mu.Lock()
	l.entries["10.0.0.1"].lastSeen = time.Now().Add(-2 * limiterIdleTTL)
	l.mu.Unlock()
	l.getLimiter("10.0.0.2")

	l.evict(time.Now())

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.entries["10.0.0.1"]; exists {
		t.Error("idle limiter for 10.0.0.1 was not evicted")
	}
	if _, exists := l.entries["10.0.0.2"]; !exists {
		t.Error("active limiter for 10.0.0.2 was evicted")
	}
}

func TestIPLimiterReusesLimiterPerIP(t *testing.T) {
	l := newIPLimiter(60, time.Minute)
	if l.getLimiter("10.0.0.1") != l.getLimiter("10.0.0.1") {
		t.Error("repeated calls for the same IP returned different limiters")
	}
	if l.getLimiter("10.0.0.1") == l.getLimiter("10.0.0.2") {
		t.Error("distinct IPs shared a limiter")
	}
}

func TestRateLimitMiddlewareBlocksAfterBurst(t *testing.T) {
	// Burst is requestsPerWindow/2 = 1, so the second immediate request
	// from the same IP must be rejected.
	mw := RateLimitMiddleware(2, time.Minute)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/predict", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first request status = %d, want %d", code, http.StatusOK)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want %d", code, http.StatusTooManyRequests)
	}
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("request from fresh IP status = %d, want %d", code, http.StatusOK)
	}
}

package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fifa4x4/predictor-api/internal/engine"
	"github.com/fifa4x4/predictor-api/internal/teams"
)

func newLocalDeps(t *testing.T) (*engine.Engine, *teams.Resolver) {
	t.Helper()
	eng, err := engine.New(engine.Default(), engine.FixedRating(7.5))
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	return eng, teams.NewResolver(nil, teams.Builtin(), nil)
}

func TestPredictLocalWhenNoUpstream(t *testing.T) {
	eng, resolver := newLocalDeps(t)
	c := New("", eng, resolver, nil)

	res, err := c.Predict(context.Background(), "Arsenal", "Chelsea", 1.85, 3.40)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if res.Team1 != "Arsenal" || res.Team2 != "Chelsea" {
		t.Errorf("teams = (%q, %q), want resolved names", res.Team1, res.Team2)
	}
	if len(res.HalfTimeScores) != 2 || len(res.FullTimeScores) != 2 {
		t.Errorf("expected 2 scorelines per period, got %d/%d",
			len(res.HalfTimeScores), len(res.FullTimeScores))
	}
}

func TestPredictUsesUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Errorf("upstream path = %q, want /predict", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"team1": "Arsenal", "team2": "Chelsea",
			"halfTimeScores": [{"score":"1:0","confidence":70},{"score":"0:0","confidence":55}],
			"fullTimeScores": [{"score":"2:1","confidence":68},{"score":"1:1","confidence":52}],
			"halfTimeWinner": {"team":"Arsenal","probability":61},
			"fullTimeWinner": {"team":"Arsenal","probability":64},
			"halfTimeGoals": {"line":2.5,"isOver":false,"percentage":78},
			"fullTimeGoals": {"line":4.5,"isOver":false,"percentage":81}
		}`)
	}))
	defer srv.Close()

	eng, resolver := newLocalDeps(t)
	c := New(srv.URL, eng, resolver, nil)

	res, err := c.Predict(context.Background(), "Arsenal", "Chelsea", 1.85, 3.40)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if res.FullTimeWinner.Probability != 64 {
		t.Errorf("upstream result not used: fullTimeWinner.probability = %d, want 64",
			res.FullTimeWinner.Probability)
	}
}

func TestPredictFallsBackOnUpstreamError(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"halfTimeScores": []}`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			eng, resolver := newLocalDeps(t)
			c := New(srv.URL, eng, resolver, nil)

			res, err := c.Predict(context.Background(), "Man City", "Burnley", 1.20, 6.50)
			if err != nil {
				t.Fatalf("fallback Predict() error = %v", err)
			}
			if len(res.HalfTimeScores) != 2 {
				t.Errorf("fallback produced %d half-time scorelines, want 2", len(res.HalfTimeScores))
			}
			if res.FullTimeWinner.Team != "Man City" {
				t.Errorf("fallback winner = %q, want Man City", res.FullTimeWinner.Team)
			}
		})
	}
}

func TestPredictFallsBackWhenUpstreamUnreachable(t *testing.T) {
	eng, resolver := newLocalDeps(t)
	// Closed port: connection refused.
	c := New("http://127.0.0.1:1", eng, resolver, nil)

	res, err := c.Predict(context.Background(), "Liverpool", "Everton", 1.50, 5.00)
	if err != nil {
		t.Fatalf("fallback Predict() error = %v", err)
	}
	if len(res.FullTimeScores) != 2 {
		t.Errorf("fallback produced %d full-time scorelines, want 2", len(res.FullTimeScores))
	}
}

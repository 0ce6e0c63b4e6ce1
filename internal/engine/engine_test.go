package engine

import (
	"fmt"
	"reflect"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New(Default(), FixedRating(7.5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return eng
}

func rating(v float64) *float64 { return &v }

func TestPredictResultShape(t *testing.T) {
	eng := newTestEngine(t)

	requests := []Request{
		{Team1: Team{Name: "Arsenal", Rating: rating(9.0)}, Team2: Team{Name: "Chelsea", Rating: rating(8.5)}, Odds1: 1.85, Odds2: 3.40},
		{Team1: Team{Name: "Everton"}, Team2: Team{Name: "Burnley"}, Odds1: 2.50, Odds2: 2.50},
		{Team1: Team{Name: "Sevilla", Rating: rating(7.4)}, Team2: Team{Name: "Real Madrid", Rating: rating(9.4)}, Odds1: 6.00, Odds2: 1.30},
		{Team1: Team{Name: "Inter"}, Team2: Team{Name: "Milan", Rating: rating(8.1)}, Odds1: 1.01, Odds2: 1.01},
	}

	for _, req := range requests {
		res, err := eng.Predict(req)
		if err != nil {
			t.Fatalf("Predict(%s vs %s) error = %v", req.Team1.Name, req.Team2.Name, err)
		}

		for _, scores := range [][]ScorePrediction{res.HalfTimeScores, res.FullTimeScores} {
			if len(scores) != 2 {
				t.Fatalf("want exactly 2 scorelines per period, got %d", len(scores))
			}
			for _, s := range scores {
				if s.Confidence < 45 || s.Confidence > 75 {
					t.Errorf("confidence %d for %q outside [45,75]", s.Confidence, s.Score)
				}
			}
		}

		for _, w := range []WinnerPrediction{res.HalfTimeWinner, res.FullTimeWinner} {
			if w.Team == Draw {
				if w.Probability < 0 || w.Probability > 100 {
					t.Errorf("draw probability %d outside [0,100]", w.Probability)
				}
				continue
			}
			if w.Probability < 50 || w.Probability > 85 {
				t.Errorf("winner probability %d outside [50,85]", w.Probability)
			}
		}

		for _, g := range []GoalLinePrediction{res.HalfTimeGoals, res.FullTimeGoals} {
			if g.Percentage < 0 || g.Percentage > 100 {
				t.Errorf("goal-line percentage %d outside [0,100]", g.Percentage)
			}
		}
	}
}

func TestPredictIdempotent(t *testing.T) {
	eng := newTestEngine(t)
	req := Request{
		Team1: Team{Name: "Liverpool"},
		Team2: Team{Name: "Newcastle", Rating: rating(8.0)},
		Odds1: 1.75,
		Odds2: 4.20,
	}

	first, err := eng.Predict(req)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	second, err := eng.Predict(req)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs under a fixed rating provider diverged:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestPredictHeavyFavorite(t *testing.T) {
	// Man City (9.5) against an unrated side at long odds: advantage is
	// 6.5/7.7 ~ 0.844, so team1-favoring scorelines must outrank
	// symmetric ones and the win probability must hit the 85 clamp.
	eng := newTestEngine(t)
	res, err := eng.Predict(Request{
		Team1: Team{Name: "Man City", Rating: rating(9.5)},
		Team2: Team{Name: "Burnley"},
		Odds1: 1.20,
		Odds2: 6.50,
	})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	for _, scores := range [][]ScorePrediction{res.HalfTimeScores, res.FullTimeScores} {
		var home, away int
		if _, err := fmt.Sscanf(scores[0].Score, "%d:%d", &home, &away); err != nil {
			t.Fatalf("malformed score %q: %v", scores[0].Score, err)
		}
		if home <= away {
			t.Errorf("top scoreline %q does not favor the heavy favorite", scores[0].Score)
		}
		if scores[0].Confidence != 75 {
			t.Errorf("top scoreline confidence = %d, want band maximum 75", scores[0].Confidence)
		}
	}

	for _, w := range []WinnerPrediction{res.HalfTimeWinner, res.FullTimeWinner} {
		if w.Team != "Man City" {
			t.Errorf("winner = %q, want Man City", w.Team)
		}
		if w.Probability != 85 {
			t.Errorf("winner probability = %d, want clamp maximum 85", w.Probability)
		}
	}
}

func TestPredictDrawComplementClamped(t *testing.T) {
	// Evenly matched teams at even odds: the half-time table tops out at
	// 0:0, and the raw draw complement (100 - 54 - 50) is negative. It
	// must be reported as 0, never as a negative percentage.
	eng, err := New(Default(), FixedRating(8.0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := eng.Predict(Request{
		Team1: Team{Name: "Roma"},
		Team2: Team{Name: "Napoli"},
		Odds1: 2.00,
		Odds2: 2.00,
	})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	if res.HalfTimeWinner.Team != Draw {
		t.Fatalf("half-time winner = %q, want %q", res.HalfTimeWinner.Team, Draw)
	}
	if res.HalfTimeWinner.Probability != 0 {
		t.Errorf("draw probability = %d, want clamped 0", res.HalfTimeWinner.Probability)
	}
}

func TestWinProbability(t *testing.T) {
	tests := []struct {
		name      string
		strength  float64
		opponent  float64
		advantage float64
		home      bool
		want      int
	}{
		{"even match, home side", 8.0, 8.0, 0.5, true, 54},
		{"even match, away side", 8.0, 8.0, 0.5, false, 50},
		{"big gap clamps high", 9.5, 7.5, 0.844, true, 85},
		{"underdog clamps low", 7.5, 9.5, 0.156, false, 50},
		{"moderate favorite", 8.5, 7.8, 0.55, true, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := winProbability(tt.strength, tt.opponent, tt.advantage, tt.home)
			if got != tt.want {
				t.Errorf("winProbability(%v, %v, %v, %v) = %d, want %d",
					tt.strength, tt.opponent, tt.advantage, tt.home, got, tt.want)
			}
		})
	}
}

func TestSelectGoalLine(t *testing.T) {
	tests := []struct {
		name     string
		lines    []GoalLineStat
		wantLine float64
		wantOver bool
		wantPct  int
	}{
		{
			name: "max lean wins",
			lines: []GoalLineStat{
				{Line: 0.5, UnderPct: 30, OverPct: 70},
				{Line: 1.5, UnderPct: 62, OverPct: 38},
				{Line: 2.5, UnderPct: 78, OverPct: 22},
			},
			wantLine: 2.5,
			wantOver: false,
			wantPct:  78,
		},
		{
			name: "over side reported",
			lines: []GoalLineStat{
				{Line: 1.5, UnderPct: 20, OverPct: 80},
				{Line: 2.5, UnderPct: 48, OverPct: 52},
			},
			wantLine: 1.5,
			wantOver: true,
			wantPct:  80,
		},
		{
			name: "equal lean resolves to first entry",
			lines: []GoalLineStat{
				{Line: 1.5, UnderPct: 70, OverPct: 30},
				{Line: 2.5, UnderPct: 30, OverPct: 70},
			},
			wantLine: 1.5,
			wantOver: false,
			wantPct:  70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectGoalLine(tt.lines)
			if got.Line != tt.wantLine || got.IsOver != tt.wantOver || got.Percentage != tt.wantPct {
				t.Errorf("selectGoalLine() = %+v, want line=%v over=%v pct=%d",
					got, tt.wantLine, tt.wantOver, tt.wantPct)
			}
		})
	}
}

func TestScorelineTieBreakKeepsTableOrder(t *testing.T) {
	// Two draws with equal frequency carry equal weight for any inputs;
	// the earlier table entry must rank first.
	tables := Default()
	tables.HalfTime.Scorelines = []ScorelineStat{
		{1, 1, 10},
		{2, 2, 10},
		{0, 0, 5},
	}
	eng, err := New(tables, FixedRating(8.0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := eng.Predict(Request{
		Team1: Team{Name: "Tottenham"},
		Team2: Team{Name: "West Ham"},
		Odds1: 2.00,
		Odds2: 2.00,
	})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if res.HalfTimeScores[0].Score != "1:1" || res.HalfTimeScores[1].Score != "2:2" {
		t.Errorf("tie-break violated table order: got %q then %q",
			res.HalfTimeScores[0].Score, res.HalfTimeScores[1].Score)
	}
}

func TestEmptyTablesRejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tables)
	}{
		{"no half-time scorelines", func(t *Tables) { t.HalfTime.Scorelines = nil }},
		{"single full-time scoreline", func(t *Tables) { t.FullTime.Scorelines = t.FullTime.Scorelines[:1] }},
		{"no full-time goal lines", func(t *Tables) { t.FullTime.GoalLines = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := Default()
			tt.mutate(&tables)
			if _, err := New(tables, FixedRating(7.5)); err == nil {
				t.Error("New() accepted defective reference tables")
			}
		})
	}
}

func TestRandomRatingBounded(t *testing.T) {
	p := RandomRating()
	for i := 0; i < 1000; i++ {
		r := p.DefaultRating("any")
		if r < defaultRatingMin || r >= defaultRatingMax {
			t.Fatalf("DefaultRating() = %v outside [%v,%v)", r, defaultRatingMin, defaultRatingMax)
		}
	}
}

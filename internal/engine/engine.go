// Package engine implements the FIFA 4x4 match-outcome predictor.
// Given two teams and their decimal odds it derives ranked scorelines,
// a winner verdict, and an over/under goal-line recommendation for both
// the half-time and full-time periods. The engine is stateless and pure:
// all reference statistics are injected at construction, nothing is
// cached between requests, and identical inputs yield identical output
// under a fixed rating provider.
package engine

import (
	"fmt"
	"math"
	"sort"
)

// Draw is the winner verdict for a drawn period.
const Draw = "draw"

// homeAdvantage is the constant edge granted to the first-listed team.
const homeAdvantage = 0.58

// Confidence band for scoreline predictions.
const (
	confidenceFloor = 45
	confidenceSpan  = 30
)

// Team identifies one side of a prediction request. Rating is the
// historical strength (observed range roughly 7.0-9.5) and may be nil
// when no history exists; absent ratings are resolved through the
// engine's RatingProvider.
type Team struct {
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
}

// Request is a validated prediction request. Callers guarantee the two
// teams are distinct and both odds are >= 1.01 before invoking Predict;
// the engine does not re-check those preconditions.
type Request struct {
	Team1 Team
	Team2 Team
	Odds1 float64
	Odds2 float64
}

// ScorePrediction is one ranked scoreline with its confidence percentage.
type ScorePrediction struct {
	Score      string `json:"score"`
	Confidence int    `json:"confidence"`
}

// WinnerPrediction is the period verdict: a team name or Draw, with a
// probability percentage. The probability is computed independently of
// the scoreline confidences and the two may disagree.
type WinnerPrediction struct {
	Team        string `json:"team"`
	Probability int    `json:"probability"`
}

// GoalLinePrediction is an over/under recommendation for one period.
type GoalLinePrediction struct {
	Line       float64 `json:"line"`
	IsOver     bool    `json:"isOver"`
	Percentage int     `json:"percentage"`
}

// Result is the normalized prediction output. Produced fresh per request
// and never mutated afterwards.
type Result struct {
	Team1          string             `json:"team1"`
	Team2          string             `json:"team2"`
	HalfTimeScores []ScorePrediction  `json:"halfTimeScores"`
	FullTimeScores []ScorePrediction  `json:"fullTimeScores"`
	HalfTimeWinner WinnerPrediction   `json:"halfTimeWinner"`
	FullTimeWinner WinnerPrediction   `json:"fullTimeWinner"`
	HalfTimeGoals  GoalLinePrediction `json:"halfTimeGoals"`
	FullTimeGoals  GoalLinePrediction `json:"fullTimeGoals"`
}

// Engine scores prediction requests against immutable reference tables.
// Safe for concurrent use.
type Engine struct {
	tables   Tables
	defaults RatingProvider
}

// New creates an engine over the given reference tables. The tables are
// validated once here; an empty period table is a configuration defect,
// not a per-request condition.
func New(tables Tables, defaults RatingProvider) (*Engine, error) {
	if err := tables.validate(); err != nil {
		return nil, err
	}
	if defaults == nil {
		defaults = RandomRating()
	}
	return &Engine{tables: tables, defaults: defaults}, nil
}

// Predict transforms a validated request into a full prediction.
func (e *Engine) Predict(req Request) (Result, error) {
	if err := e.tables.validate(); err != nil {
		return Result{}, err
	}

	s1 := e.resolveRating(req.Team1)
	s2 := e.resolveRating(req.Team2)

	// Relative favorite-ness implied by the market: lower odds1 pushes
	// advantage toward 1. Recomputed per request, never cached.
	advantage := req.Odds2 / (req.Odds1 + req.Odds2)

	res := Result{Team1: req.Team1.Name, Team2: req.Team2.Name}

	var htTop, ftTop ScorelineStat
	ht := e.tables.HalfTime
	res.HalfTimeScores, htTop = rankScorelines(ht.Scorelines, advantage, s1-s2)
	res.HalfTimeWinner = periodWinner(htTop, req, s1, s2, advantage)
	res.HalfTimeGoals = selectGoalLine(ht.GoalLines)

	ft := e.tables.FullTime
	res.FullTimeScores, ftTop = rankScorelines(ft.Scorelines, advantage, s1-s2)
	res.FullTimeWinner = periodWinner(ftTop, req, s1, s2, advantage)
	res.FullTimeGoals = selectGoalLine(ft.GoalLines)

	return res, nil
}

func (e *Engine) resolveRating(t Team) float64 {
	if t.Rating != nil {
		return *t.Rating
	}
	return e.defaults.DefaultRating(t.Name)
}

// rankScorelines weights every candidate scoreline by its historical
// frequency, scaled toward the market favorite and boosted for lines
// that favor the stronger team, then returns the top two. Ties keep
// table order (stable sort), so the first-listed entry wins.
func rankScorelines(entries []ScorelineStat, advantage, strengthDiff float64) ([]ScorePrediction, ScorelineStat) {
	type weighted struct {
		stat   ScorelineStat
		weight float64
	}

	boost := 1 + math.Abs(strengthDiff)/10
	scored := make([]weighted, 0, len(entries))
	for _, sc := range entries {
		w := float64(sc.Frequency)
		switch {
		case sc.Home > sc.Away:
			w *= 2 * advantage
			if strengthDiff > 0 {
				w *= boost
			}
		case sc.Away > sc.Home:
			w *= 2 * (1 - advantage)
			if strengthDiff < 0 {
				w *= boost
			}
		}
		scored = append(scored, weighted{sc, w})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].weight > scored[j].weight
	})

	top := scored[0].weight
	out := make([]ScorePrediction, 0, 2)
	for _, s := range scored[:2] {
		out = append(out, ScorePrediction{
			Score:      fmt.Sprintf("%d:%d", s.stat.Home, s.stat.Away),
			Confidence: int(confidenceFloor + s.weight/top*confidenceSpan),
		})
	}
	return out, scored[0].stat
}

// periodWinner reads the verdict off the top-ranked scoreline and
// attaches an independently computed probability. A drawn top scoreline
// yields the clamped complement of both win probabilities, which in the
// source data can go negative and is floored at zero.
func periodWinner(top ScorelineStat, req Request, s1, s2, advantage float64) WinnerPrediction {
	switch {
	case top.Home > top.Away:
		return WinnerPrediction{
			Team:        req.Team1.Name,
			Probability: winProbability(s1, s2, advantage, true),
		}
	case top.Away > top.Home:
		return WinnerPrediction{
			Team:        req.Team2.Name,
			Probability: winProbability(s2, s1, 1-advantage, false),
		}
	default:
		p1 := winProbability(s1, s2, advantage, true)
		p2 := winProbability(s2, s1, 1-advantage, false)
		return WinnerPrediction{Team: Draw, Probability: clampInt(100-p1-p2, 0, 100)}
	}
}

// winProbability maps a strength gap and market advantage into a win
// percentage, clamped to [50,85].
func winProbability(strength, opponent, advantage float64, home bool) int {
	p := 50 + (strength-opponent)*5
	if home {
		p += (homeAdvantage*100 - 50) / 2
	}
	p *= advantage * 2
	return clampInt(int(p), 50, 85)
}

// selectGoalLine picks the line with the strongest historical lean,
// measured as |over - under|. Equal leans resolve to the first-listed
// entry.
func selectGoalLine(lines []GoalLineStat) GoalLinePrediction {
	best := lines[0]
	bestLean := -1
	for _, gl := range lines {
		lean := gl.OverPct - gl.UnderPct
		if lean < 0 {
			lean = -lean
		}
		if lean > bestLean {
			best, bestLean = gl, lean
		}
	}
	pred := GoalLinePrediction{Line: best.Line}
	if best.OverPct > best.UnderPct {
		pred.IsOver = true
		pred.Percentage = best.OverPct
	} else {
		pred.Percentage = best.UnderPct
	}
	return pred
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

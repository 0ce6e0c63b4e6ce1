package engine

import "fmt"

// ScorelineStat is one historical scoreline with its observed frequency.
type ScorelineStat struct {
	Home      int
	Away      int
	Frequency int
}

// GoalLineStat is one over/under threshold with its observed under and
// over percentages. The two are independent observations and do not
// have to sum to 100.
type GoalLineStat struct {
	Line     float64
	UnderPct int
	OverPct  int
}

// PeriodStats holds the reference statistics for a single period.
type PeriodStats struct {
	Scorelines []ScorelineStat
	GoalLines  []GoalLineStat
}

// Tables is the complete reference dataset, loaded once at startup and
// treated as immutable afterwards.
type Tables struct {
	HalfTime PeriodStats
	FullTime PeriodStats
}

func (t Tables) validate() error {
	for _, p := range []struct {
		name  string
		stats PeriodStats
	}{
		{"half_time", t.HalfTime},
		{"full_time", t.FullTime},
	} {
		if len(p.stats.Scorelines) < 2 {
			return fmt.Errorf("reference tables: period %s needs at least 2 scorelines, has %d", p.name, len(p.stats.Scorelines))
		}
		if len(p.stats.GoalLines) == 0 {
			return fmt.Errorf("reference tables: period %s has no goal lines", p.name)
		}
	}
	return nil
}

// Default returns the built-in FIFA 4x4 reference statistics. Entry
// order matters: ties in scoreline weight and goal-line lean resolve to
// the earlier entry.
func Default() Tables {
	return Tables{
		HalfTime: PeriodStats{
			Scorelines: []ScorelineStat{
				{0, 0, 18},
				{1, 0, 14},
				{0, 1, 11},
				{1, 1, 10},
				{2, 0, 7},
				{2, 1, 6},
				{0, 2, 5},
				{1, 2, 4},
				{2, 2, 3},
				{3, 0, 2},
			},
			GoalLines: []GoalLineStat{
				{Line: 0.5, UnderPct: 30, OverPct: 70},
				{Line: 1.5, UnderPct: 62, OverPct: 38},
				{Line: 2.5, UnderPct: 78, OverPct: 22},
			},
		},
		FullTime: PeriodStats{
			Scorelines: []ScorelineStat{
				{1, 1, 12},
				{2, 1, 11},
				{1, 0, 9},
				{2, 0, 8},
				{1, 2, 7},
				{2, 2, 7},
				{3, 1, 6},
				{0, 1, 5},
				{0, 0, 4},
				{3, 2, 4},
				{3, 0, 3},
				{1, 3, 3},
				{4, 2, 2},
			},
			GoalLines: []GoalLineStat{
				{Line: 1.5, UnderPct: 22, OverPct: 78},
				{Line: 2.5, UnderPct: 45, OverPct: 55},
				{Line: 3.5, UnderPct: 64, OverPct: 36},
				{Line: 4.5, UnderPct: 81, OverPct: 19},
			},
		},
	}
}

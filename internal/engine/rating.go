package engine

import "math/rand"

// Bounds for the default rating handed to teams with no history.
const (
	defaultRatingMin = 7.0
	defaultRatingMax = 9.0
)

// RatingProvider supplies a strength rating for a team that has none.
// Production uses RandomRating; tests pin a FixedRating so Predict is
// referentially transparent.
type RatingProvider interface {
	DefaultRating(team string) float64
}

// FixedRating always returns the same rating.
type FixedRating float64

func (f FixedRating) DefaultRating(string) float64 { return float64(f) }

type randomRating struct{}

// RandomRating draws a rating uniformly from [7.0, 9.0) per call. Safe
// for concurrent use.
func RandomRating() RatingProvider { return randomRating{} }

func (randomRating) DefaultRating(string) float64 {
	return defaultRatingMin + rand.Float64()*(defaultRatingMax-defaultRatingMin)
}

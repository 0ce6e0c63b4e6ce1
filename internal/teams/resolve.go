package teams

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxEditDistance is the largest levenshtein distance still accepted as
// a match for a misspelled team name.
const maxEditDistance = 3

// Resolver maps free-form team names to canonical registry entries.
// Resolution order: store lookup, case-insensitive exact match, prefix
// match, then nearest levenshtein neighbor within maxEditDistance.
// Names that match nothing pass through unchanged so unknown teams can
// still be scored with a default rating.
type Resolver struct {
	store  *Store
	known  []Team
	logger *slog.Logger
}

// NewResolver builds a resolver over the store and a candidate list
// (normally Builtin). store may be nil.
func NewResolver(store *Store, known []Team, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: store, known: known, logger: logger}
}

// Resolve returns the canonical team for name.
func (r *Resolver) Resolve(ctx context.Context, name string) Team {
	name = strings.TrimSpace(name)
	if name == "" {
		return Team{Name: name}
	}

	if t, ok, err := r.store.Lookup(ctx, name); err == nil && ok {
		return t
	} else if err != nil && !errors.Is(err, ErrNoStore) {
		r.logger.Warn("team store lookup failed, using built-in list", "team", name, "error", err)
	}

	lower := strings.ToLower(name)
	for _, t := range r.known {
		if strings.ToLower(t.Name) == lower || strings.ToLower(t.Abbreviation) == lower {
			return t
		}
	}
	for _, t := range r.known {
		if strings.HasPrefix(strings.ToLower(t.Name), lower) {
			return t
		}
	}

	bestDist := maxEditDistance + 1
	var best Team
	for _, t := range r.known {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(t.Name))
		if d < bestDist {
			best, bestDist = t, d
		}
	}
	if bestDist <= maxEditDistance {
		return best
	}

	return Team{Name: name}
}

// Package remote calls an upstream prediction service and falls back to
// the local engine when the upstream is absent or unavailable. The
// fallback is transparent: both paths produce the same normalized
// result shape, so callers never know which one answered.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fifa4x4/predictor-api/internal/engine"
	"github.com/fifa4x4/predictor-api/internal/teams"
)

const requestTimeout = 10 * time.Second

// Client resolves team names and produces predictions, remotely when a
// base URL is configured and locally otherwise. No retries: a single
// upstream failure immediately falls back.
type Client struct {
	baseURL    string
	httpClient *http.Client
	engine     *engine.Engine
	resolver   *teams.Resolver
	logger     *slog.Logger
}

// New creates a client. baseURL may be empty for local-only operation.
func New(baseURL string, eng *engine.Engine, resolver *teams.Resolver, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		engine:     eng,
		resolver:   resolver,
		logger:     logger,
	}
}

// Predict returns a prediction for the two named teams. Callers must
// have validated the odds (>= 1.01) and team distinctness already.
func (c *Client) Predict(ctx context.Context, team1, team2 string, odds1, odds2 float64) (engine.Result, error) {
	if c.baseURL != "" {
		res, err := c.predictRemote(ctx, team1, team2, odds1, odds2)
		if err == nil {
			return res, nil
		}
		c.logger.Warn("remote prediction failed, falling back to local engine",
			"upstream", c.baseURL, "error", err)
	}
	return c.predictLocal(ctx, team1, team2, odds1, odds2)
}

func (c *Client) predictLocal(ctx context.Context, team1, team2 string, odds1, odds2 float64) (engine.Result, error) {
	t1 := c.resolver.Resolve(ctx, team1)
	t2 := c.resolver.Resolve(ctx, team2)
	return c.engine.Predict(engine.Request{
		Team1: engine.Team{Name: t1.Name, Abbreviation: t1.Abbreviation, Rating: t1.Rating},
		Team2: engine.Team{Name: t2.Name, Abbreviation: t2.Abbreviation, Rating: t2.Rating},
		Odds1: odds1,
		Odds2: odds2,
	})
}

func (c *Client) predictRemote(ctx context.Context, team1, team2 string, odds1, odds2 float64) (engine.Result, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"team1": team1,
		"team2": team2,
		"odds1": odds1,
		"odds2": odds2,
	})
	if err != nil {
		return engine.Result{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return engine.Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return engine.Result{}, fmt.Errorf("call upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return engine.Result{}, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var res engine.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return engine.Result{}, fmt.Errorf("decode response: %w", err)
	}
	if len(res.HalfTimeScores) == 0 || len(res.FullTimeScores) == 0 {
		return engine.Result{}, fmt.Errorf("upstream response missing scorelines")
	}
	if res.Team1 == "" {
		res.Team1 = team1
	}
	if res.Team2 == "" {
		res.Team2 = team2
	}
	return res, nil
}

// Package subscription checks Telegram channel membership through the
// Bot API. The policy on upstream failure is fail-open: predictions are
// a free feature gated by a soft follow prompt, so an outage must never
// lock users out.
package subscription

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/fifa4x4/predictor-api/internal/cache"
)

const (
	telegramBaseURL = "https://api.telegram.org"
	checkTimeout    = 10 * time.Second
)

// memberStatuses are the getChatMember statuses counted as subscribed.
var memberStatuses = map[string]bool{
	"creator":       true,
	"administrator": true,
	"member":        true,
}

// Checker verifies channel membership with 24h result caching.
type Checker struct {
	baseURL    string
	botToken   string
	channelID  string
	httpClient *http.Client
	cache      *cache.Cache
	logger     *slog.Logger
}

// NewChecker creates a checker. botToken and channelID may be empty, in
// which case every user is treated as subscribed.
func NewChecker(botToken, channelID string, c *cache.Cache, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		baseURL:    telegramBaseURL,
		botToken:   botToken,
		channelID:  channelID,
		httpClient: &http.Client{Timeout: checkTimeout},
		cache:      c,
		logger:     logger,
	}
}

// IsConfigured reports whether bot token and channel ID are both set.
func (c *Checker) IsConfigured() bool {
	return c.botToken != "" && c.channelID != ""
}

// IsSubscribed reports whether the user follows the channel. Unconfigured
// checkers and upstream failures both return true (fail-open).
func (c *Checker) IsSubscribed(ctx context.Context, userID int64, username string) bool {
	if !c.IsConfigured() {
		return true
	}

	cacheKey := fmt.Sprintf("sub:%d", userID)
	if data, _, ok := c.cache.Get(cacheKey); ok {
		return string(data) == "1"
	}

	subscribed, err := c.check(ctx, userID)
	if err != nil {
		c.logger.Warn("subscription check failed, granting access", "user_id", userID, "username", username, "error", err)
		return true
	}

	val := []byte("0")
	if subscribed {
		val = []byte("1")
	}
	c.cache.Set(cacheKey, val, cache.TTLSubscription)
	return subscribed
}

type chatMemberResponse struct {
	OK     bool `json:"ok"`
	Result struct {
		Status string `json:"status"`
	} `json:"result"`
}

func (c *Checker) check(ctx context.Context, userID int64) (bool, error) {
	q := url.Values{}
	q.Set("chat_id", c.channelID)
	q.Set("user_id", fmt.Sprintf("%d", userID))
	endpoint := fmt.Sprintf("%s/bot%s/getChatMember?%s", c.baseURL, c.botToken, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("call telegram: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	var body chatMemberResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	if !body.OK {
		return false, fmt.Errorf("telegram response not ok")
	}

	return memberStatuses[body.Result.Status], nil
}

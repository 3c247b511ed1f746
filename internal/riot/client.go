package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// Rate limits for a dev key, using conservative values to stay clear
	// of the real 20/s and 100/2min caps.
	requestsPerSecond = 15
	requestsPer2Min   = 90

	defaultRetryAfter = 10 * time.Second
)

// ErrNotFound is returned when the API answers 404 for a player or match.
var ErrNotFound = fmt.Errorf("riot: not found")

// regionalRoutes maps platform routing values (na1, euw1, ...) to the
// regional routing value used by account-v1 and match-v5.
var regionalRoutes = map[string]string{
	"na1": "americas",
	"br1": "americas",
	"la1": "americas",
	"la2": "americas",
	"oc1": "americas",

	"eun1": "europe",
	"euw1": "europe",
	"tr1":  "europe",
	"ru":   "europe",

	"jp1": "asia",
	"kr":  "asia",

	"ph2": "sea",
	"sg2": "sea",
	"th2": "sea",
	"tw2": "sea",
	"vn2": "sea",
}

// RegionalRoute converts a platform routing value to its regional routing
// value. Unknown platforms fall back to americas.
func RegionalRoute(region string) string {
	if route, ok := regionalRoutes[region]; ok {
		return route
	}
	return "americas"
}

// Client is a rate-limited Riot API client. All calls share two sliding
// windows (1s and 2min) so concurrent callers stay inside the key's quota.
type Client struct {
	apiKey     string
	httpClient *http.Client
	log        zerolog.Logger

	// baseURL overrides the regional host when set. Tests point it at a
	// local server.
	baseURL string

	mu          sync.Mutex
	shortWindow []time.Time
	longWindow  []time.Time
}

// NewClient creates a new Riot API client.
func NewClient(apiKey string, log zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("riot API key is required")
	}

	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("component", "riot_client").Logger(),
	}, nil
}

// waitForRateLimit blocks until another request fits inside both windows.
func (c *Client) waitForRateLimit() {
	for {
		c.mu.Lock()

		now := time.Now()
		oneSecondAgo := now.Add(-1 * time.Second)
		twoMinutesAgo := now.Add(-2 * time.Minute)

		newShort := c.shortWindow[:0]
		for _, t := range c.shortWindow {
			if t.After(oneSecondAgo) {
				newShort = append(newShort, t)
			}
		}
		c.shortWindow = newShort

		newLong := c.longWindow[:0]
		for _, t := range c.longWindow {
			if t.After(twoMinutesAgo) {
				newLong = append(newLong, t)
			}
		}
		c.longWindow = newLong

		if len(c.shortWindow) >= requestsPerSecond {
			waitTime := c.shortWindow[0].Add(time.Second).Sub(now) + 100*time.Millisecond
			c.mu.Unlock()
			c.log.Debug().Dur("wait", waitTime).Msg("Short window full, waiting")
			time.Sleep(waitTime)
			continue
		}

		if len(c.longWindow) >= requestsPer2Min {
			waitTime := c.longWindow[0].Add(2*time.Minute).Sub(now) + 100*time.Millisecond
			c.mu.Unlock()
			c.log.Debug().Dur("wait", waitTime).Msg("Long window full, waiting")
			time.Sleep(waitTime)
			continue
		}

		c.shortWindow = append(c.shortWindow, time.Now())
		c.longWindow = append(c.longWindow, time.Now())
		c.mu.Unlock()
		return
	}
}

// doRequest makes a rate-limited GET request and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, reqURL string, result interface{}) error {
	c.waitForRateLimit()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(result)

	case http.StatusTooManyRequests:
		waitTime := defaultRetryAfter
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if secs, err := strconv.Atoi(retryAfter); err == nil {
				waitTime = time.Duration(secs) * time.Second
			}
		}
		c.log.Warn().Dur("retry_after", waitTime).Msg("Rate limited by API, backing off")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
		return c.doRequest(ctx, reqURL, result)

	case http.StatusForbidden:
		return fmt.Errorf("API returned 403 Forbidden - check if your API key is valid")

	case http.StatusNotFound:
		return ErrNotFound

	default:
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}
}

// regionalBase returns the host for regional (account-v1, match-v5)
// endpoints.
func (c *Client) regionalBase(region string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", RegionalRoute(region))
}

// GetAccountByRiotID fetches account info by Riot ID (gameName#tagLine).
func (c *Client) GetAccountByRiotID(ctx context.Context, region, gameName, tagLine string) (*AccountResponse, error) {
	reqURL := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.regionalBase(region), url.PathEscape(gameName), url.PathEscape(tagLine))

	var account AccountResponse
	err := c.doRequest(ctx, reqURL, &account)
	return &account, err
}

// GetAccountByPUUID fetches account info by PUUID.
func (c *Client) GetAccountByPUUID(ctx context.Context, region, puuid string) (*AccountResponse, error) {
	reqURL := fmt.Sprintf("%s/riot/account/v1/accounts/by-puuid/%s",
		c.regionalBase(region), puuid)

	var account AccountResponse
	err := c.doRequest(ctx, reqURL, &account)
	return &account, err
}

// MatchHistoryOptions filters a match-history query.
type MatchHistoryOptions struct {
	Count     int   // max 100, defaults to 20
	Start     int   // pagination offset
	Queue     int   // queue ID filter, 0 means no filter
	StartTime int64 // epoch seconds, 0 means unset
	EndTime   int64 // epoch seconds, 0 means unset
}

// GetMatchHistory fetches match IDs for a player.
func (c *Client) GetMatchHistory(ctx context.Context, region, puuid string, opts MatchHistoryOptions) ([]string, error) {
	count := opts.Count
	if count <= 0 {
		count = 20
	}
	if count > 100 {
		count = 100
	}

	params := url.Values{}
	params.Set("start", strconv.Itoa(opts.Start))
	params.Set("count", strconv.Itoa(count))
	if opts.Queue > 0 {
		params.Set("queue", strconv.Itoa(opts.Queue))
	}
	if opts.StartTime > 0 {
		params.Set("startTime", strconv.FormatInt(opts.StartTime, 10))
	}
	if opts.EndTime > 0 {
		params.Set("endTime", strconv.FormatInt(opts.EndTime, 10))
	}

	reqURL := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?%s",
		c.regionalBase(region), puuid, params.Encode())

	var matchIDs []string
	err := c.doRequest(ctx, reqURL, &matchIDs)
	return matchIDs, err
}

// GetMatch fetches match details.
func (c *Client) GetMatch(ctx context.Context, region, matchID string) (*MatchResponse, error) {
	reqURL := fmt.Sprintf("%s/lol/match/v5/matches/%s",
		c.regionalBase(region), matchID)

	var match MatchResponse
	err := c.doRequest(ctx, reqURL, &match)
	return &match, err
}

// GetTimeline fetches the match timeline.
func (c *Client) GetTimeline(ctx context.Context, region, matchID string) (*TimelineResponse, error) {
	reqURL := fmt.Sprintf("%s/lol/match/v5/matches/%s/timeline",
		c.regionalBase(region), matchID)

	var timeline TimelineResponse
	err := c.doRequest(ctx, reqURL, &timeline)
	return &timeline, err
}

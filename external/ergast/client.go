package ergast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/oversteer/fantasy-gp/internal/platform/logging"
	"github.com/oversteer/fantasy-gp/internal/platform/resilience"
	"github.com/oversteer/fantasy-gp/internal/usecase"
)

const defaultBaseURL = "https://api.jolpi.ca/ergast/f1"

var errErgastTransient = crerr.New("ergast transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches official session classifications. It keys every driver by
// the provider's driverId slug, which is also the public id format used for
// seeded drivers.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.ClassificationProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchRaceClassification pulls race, qualifying, and sprint session results
// for one weekend. The race session is mandatory; qualifying and sprint are
// best-effort because the provider publishes them at different times.
func (c *Client) FetchRaceClassification(ctx context.Context, season int, round int) (usecase.RaceClassification, error) {
	if season <= 0 || round <= 0 {
		return usecase.RaceClassification{}, fmt.Errorf("season and round must be greater than zero")
	}

	classification := usecase.RaceClassification{}

	raceNode, err := c.fetchSession(ctx, season, round, "results")
	if err != nil {
		return usecase.RaceClassification{}, fmt.Errorf("fetch race results season=%d round=%d: %w", season, round, err)
	}
	if raceNode != nil {
		classification.Race = positionsByDriver(raceNode.Results, pickFinish)
		classification.Grid = positionsByDriver(raceNode.Results, pickGrid)
	}

	qualiNode, err := c.fetchSession(ctx, season, round, "qualifying")
	if err != nil {
		if ctx.Err() != nil {
			return usecase.RaceClassification{}, ctx.Err()
		}
		c.logger.WarnContext(ctx, "fetch qualifying failed, falling back to race grid slots",
			"season", season, "round", round, "error", err)
	} else if qualiNode != nil && len(qualiNode.QualifyingResults) > 0 {
		classification.Grid = positionsByDriver(qualiNode.QualifyingResults, pickPosition)
	}

	sprintNode, err := c.fetchSession(ctx, season, round, "sprint")
	if err != nil {
		if ctx.Err() != nil {
			return usecase.RaceClassification{}, ctx.Err()
		}
		c.logger.WarnContext(ctx, "fetch sprint failed, scoring weekend without sprint sessions",
			"season", season, "round", round, "error", err)
	} else if sprintNode != nil && len(sprintNode.SprintResults) > 0 {
		classification.Sprint = positionsByDriver(sprintNode.SprintResults, pickFinish)
		classification.SprintGrid = positionsByDriver(sprintNode.SprintResults, pickGrid)
	}

	return classification, nil
}

// fetchSession returns nil when the provider has no data for the session.
func (c *Client) fetchSession(ctx context.Context, season, round int, session string) (*raceNode, error) {
	path := sessionPath(season, round, session)

	var envelope mrDataEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, err
	}

	races := envelope.MRData.RaceTable.Races
	if len(races) == 0 {
		return nil, nil
	}
	return &races[0], nil
}

func sessionPath(season, round int, session string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('/')
	_, _ = buf.WriteString(strconv.Itoa(season))
	_ = buf.WriteByte('/')
	_, _ = buf.WriteString(strconv.Itoa(round))
	_ = buf.WriteByte('/')
	_, _ = buf.WriteString(session)
	_, _ = buf.WriteString(".json")

	return buf.String()
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "ergast circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: results provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errErgastTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errErgastTransient, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = crerr.Wrapf(errErgastTransient, "read response body: %v", readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = crerr.Wrapf(errErgastTransient, "provider status=%d", resp.StatusCode)
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "ergast request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func positionsByDriver(items []resultNode, pick func(resultNode) (int, bool)) map[string]int {
	out := make(map[string]int, len(items))
	for _, item := range items {
		driverID := strings.TrimSpace(item.Driver.DriverID)
		if driverID == "" {
			continue
		}
		value, ok := pick(item)
		if !ok {
			continue
		}
		out[driverID] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func pickPosition(item resultNode) (int, bool) {
	return parsePositiveInt(item.Position)
}

// pickFinish drops retirements: the provider lists every entrant with a
// position, so classification membership is decided by status. "Finished"
// and lapped statuses ("+1 Lap") count as classified.
func pickFinish(item resultNode) (int, bool) {
	status := strings.TrimSpace(item.Status)
	if status != "" && status != "Finished" && !strings.HasPrefix(status, "+") {
		return 0, false
	}
	return parsePositiveInt(item.Position)
}

// pickGrid skips grid "0", which the provider uses for pit-lane starts.
func pickGrid(item resultNode) (int, bool) {
	return parsePositiveInt(item.Grid)
}

func parsePositiveInt(raw string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}

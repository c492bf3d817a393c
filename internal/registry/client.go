package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"trialscout/internal/domain"
)

const DefaultBaseURL = "https://clinicaltrials.gov/api/v2/studies"

// Query terms understood by the registry's search endpoint.
const (
	TermLatePhase = "AREA[Phase]PHASE3"
	termSponsor   = "AREA[LeadSponsorName]"
)

// SponsorTerm builds the lead-sponsor filter for a company name.
func SponsorTerm(company string) string { return termSponsor + company }

// Searcher is the upstream dependency the aggregation layer sees.
type Searcher interface {
	Search(ctx context.Context, term string, pageSize int) ([]domain.Study, error)
}

type Config struct {
	BaseURL   string
	Timeout   time.Duration // per-call, defaults to 30s
	ReqPerSec float64
	Burst     int
}

// Client issues search queries against the trial registry. Safe for
// concurrent use: the only shared state is the http.Client connection pool,
// the rate limiter, and the singleflight group.
type Client struct {
	baseURL string
	hc      *http.Client
	limiter *rate.Limiter
	group   singleflight.Group
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.ReqPerSec <= 0 {
		cfg.ReqPerSec = 2.0
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 2
	}
	return &Client{
		baseURL: cfg.BaseURL,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.ReqPerSec), cfg.Burst),
	}
}

// Search returns the studies matching term. Concurrent identical queries are
// collapsed onto a single outbound call.
func (c *Client) Search(ctx context.Context, term string, pageSize int) ([]domain.Study, error) {
	body, err := c.Fetch(ctx, term, pageSize)
	if err != nil {
		return nil, err
	}
	return DecodeStudies(body)
}

// Fetch performs the raw registry call and returns the response body. The
// caching wrapper uses this to store responses verbatim.
func (c *Client) Fetch(ctx context.Context, term string, pageSize int) ([]byte, error) {
	key := term + "|" + strconv.Itoa(pageSize)
	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.fetch(ctx, term, pageSize)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) fetch(ctx context.Context, term string, pageSize int) ([]byte, error) {
	q := url.Values{}
	q.Set("query.term", term)
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("format", "json")
	reqURL := c.baseURL + "?" + q.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "trialscout/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("registry status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("registry read body: %w", err)
	}
	return body, nil
}

// DecodeStudies pulls the studies list out of a raw search response.
func DecodeStudies(body []byte) ([]domain.Study, error) {
	var doc struct {
		Studies []domain.Study `json:"studies"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("registry decode: %w", err)
	}
	return doc.Studies, nil
}

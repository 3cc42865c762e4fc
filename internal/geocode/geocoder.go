package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"stagelink_backend/internal/logger"
)

// Coordinates is a WGS84 point. Longitude first, matching the storage
// convention for geospatial pairs.
type Coordinates struct {
	Lon float64
	Lat float64
}

type Config struct {
	BaseURL     string        // Nominatim-compatible /search endpoint
	UserAgent   string        // required by public Nominatim instances
	Timeout     time.Duration // per-request network timeout
	MinInterval time.Duration // minimum delay between outbound calls
}

// Client resolves free-form addresses to coordinates through a
// Nominatim-style provider. Every normalized address is memoized for the
// lifetime of the process, failures included, and outbound calls are
// serialized to at most one per MinInterval.
//
// The client never returns an error: any failure (timeout, provider
// error, empty result) collapses to a cached nil.
type Client struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	minInterval time.Duration

	mu       sync.Mutex
	cache    map[string]*Coordinates
	lastCall time.Time
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		minInterval: cfg.MinInterval,
		cache:       make(map[string]*Coordinates),
	}
}

// GeocodeAddress resolves an address to coordinates, or nil when the
// address cannot be resolved. The result (nil included) is cached under
// the normalized address.
func (c *Client) GeocodeAddress(ctx context.Context, address string) *Coordinates {
	key := normalizeAddress(address)
	if key == "" {
		return nil
	}

	// The mutex is held across the rate-limit wait and the lookup so
	// concurrent callers are strictly serialized.
	c.mu.Lock()
	defer c.mu.Unlock()

	if coords, ok := c.cache[key]; ok {
		return coords
	}

	if wait := c.minInterval - time.Since(c.lastCall); wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil
		}
	}
	c.lastCall = time.Now()

	coords := c.lookup(ctx, address)
	c.cache[key] = coords
	return coords
}

// CacheSize reports the number of memoized addresses.
func (c *Client) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

func (c *Client) lookup(ctx context.Context, address string) *Coordinates {
	endpoint := c.baseURL + "?format=json&limit=1&q=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.CtxWithError(ctx, "geocode: building request failed", err, "address", address)
		return nil
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.CtxWithError(ctx, "geocode: provider call failed", err, "address", address)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.CtxWarn(ctx, "geocode: provider returned non-OK status", "status", resp.StatusCode, "address", address)
		return nil
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		logger.CtxWithError(ctx, "geocode: decoding response failed", err, "address", address)
		return nil
	}
	if len(results) == 0 {
		return nil
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return nil
	}

	return &Coordinates{Lon: lon, Lat: lat}
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

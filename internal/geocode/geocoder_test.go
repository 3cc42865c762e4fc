package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		BaseURL:     srv.URL,
		UserAgent:   "test-agent",
		Timeout:     2 * time.Second,
		MinInterval: time.Millisecond,
	})
}

func TestGeocodeAddress_Success(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "paris", r.URL.Query().Get("q"))
		w.Write([]byte(`[{"lat": "48.8566", "lon": "2.3522"}]`))
	})

	coords := client.GeocodeAddress(context.Background(), "paris")
	require.NotNil(t, coords)
	assert.InDelta(t, 48.8566, coords.Lat, 1e-9)
	assert.InDelta(t, 2.3522, coords.Lon, 1e-9)
}

func TestGeocodeAddress_CachesByNormalizedAddress(t *testing.T) {
	t.Parallel()

	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[{"lat": "48.8566", "lon": "2.3522"}]`))
	})

	ctx := context.Background()
	first := client.GeocodeAddress(ctx, "Paris")
	second := client.GeocodeAddress(ctx, "  PARIS ")

	assert.Equal(t, 1, calls)
	assert.Same(t, first, second)
	assert.Equal(t, 1, client.CacheSize())
}

func TestGeocodeAddress_NegativeCaching(t *testing.T) {
	t.Parallel()

	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	})

	ctx := context.Background()
	assert.Nil(t, client.GeocodeAddress(ctx, "nowhere"))
	assert.Nil(t, client.GeocodeAddress(ctx, "nowhere"))

	// The miss is memoized too, so the provider is hit once.
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, client.CacheSize())
}

func TestGeocodeAddress_ProviderErrorsCollapseToNil(t *testing.T) {
	t.Parallel()

	t.Run("non-OK status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		assert.Nil(t, client.GeocodeAddress(context.Background(), "paris"))
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not": "a list"}`))
		})
		assert.Nil(t, client.GeocodeAddress(context.Background(), "paris"))
	})

	t.Run("unparseable coordinates", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"lat": "abc", "lon": "def"}]`))
		})
		assert.Nil(t, client.GeocodeAddress(context.Background(), "paris"))
	})
}

func TestGeocodeAddress_EmptyAddress(t *testing.T) {
	t.Parallel()

	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	assert.Nil(t, client.GeocodeAddress(context.Background(), "   "))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, client.CacheSize())
}

func TestGeocodeAddress_RateLimitSpacing(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var hits []time.Time
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits = append(hits, time.Now())
		mu.Unlock()
		w.Write([]byte(`[{"lat": "1", "lon": "2"}]`))
	}))
	defer srv.Close()

	minInterval := 50 * time.Millisecond
	client := New(Config{BaseURL: srv.URL, MinInterval: minInterval})

	ctx := context.Background()
	client.GeocodeAddress(ctx, "first")
	client.GeocodeAddress(ctx, "second")
	client.GeocodeAddress(ctx, "third")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, hits, 3)
	for i := 1; i < len(hits); i++ {
		gap := hits[i].Sub(hits[i-1])
		assert.GreaterOrEqual(t, gap, minInterval-5*time.Millisecond,
			"calls %d and %d too close together", i-1, i)
	}
}

func TestGeocodeAddress_ContextCancelledDuringWait(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat": "1", "lon": "2"}]`))
	})
	client.minInterval = time.Minute

	ctx := context.Background()
	require.NotNil(t, client.GeocodeAddress(ctx, "first"))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Nil(t, client.GeocodeAddress(cancelled, "second"))

	// A cancelled wait is not cached as a failed lookup.
	assert.Equal(t, 1, client.CacheSize())
}

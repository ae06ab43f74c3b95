package theme

import (
	"context"
	"io"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/tidwall/gjson"
)

const (
	ipAPIURL = "http://ip-api.com/json"

	// positionMaxAge is how long a sample stays fresh enough to reuse
	// instead of sampling again.
	positionMaxAge = 6 * time.Hour
)

// IPLocator approximates the device position from its public IP.
// Fixed installations can pin coordinates with BIGCLOCK_LAT and
// BIGCLOCK_LON, which bypass the network entirely.
type IPLocator struct {
	Client *http.Client
	URL    string

	mu       sync.Mutex
	cached   *Position
	cachedAt time.Time
}

func NewIPLocator() *IPLocator {
	return &IPLocator{Client: &http.Client{}, URL: ipAPIURL}
}

// Locate returns a position or nil. It never returns an error: lookup
// failure, bad payloads, and cancellation all mean "no position".
func (l *IPLocator) Locate(ctx context.Context) *Position {
	if pos := envPosition(); pos != nil {
		return pos
	}

	l.mu.Lock()
	if l.cached != nil && time.Since(l.cachedAt) < positionMaxAge {
		pos := l.cached
		l.mu.Unlock()
		return pos
	}
	l.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil
	}

	doc := gjson.ParseBytes(body)
	if doc.Get("status").String() != "success" {
		return nil
	}
	lat, lon := doc.Get("lat"), doc.Get("lon")
	if !lat.Exists() || !lon.Exists() {
		return nil
	}

	pos := &Position{Lat: lat.Float(), Lon: lon.Float()}
	l.mu.Lock()
	l.cached = pos
	l.cachedAt = time.Now()
	l.mu.Unlock()
	return pos
}

func envPosition() *Position {
	latStr, lonStr := os.Getenv("BIGCLOCK_LAT"), os.Getenv("BIGCLOCK_LON")
	if latStr == "" || lonStr == "" {
		return nil
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		return nil
	}
	return &Position{Lat: lat, Lon: lon}
}

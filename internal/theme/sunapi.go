package theme

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const sunAPIURL = "https://api.sunrise-sunset.org/json"

// SunClient asks the sunrise-sunset service for today's sun times at a
// coordinate. Night means before sunrise or at/after sunset.
type SunClient struct {
	Client *http.Client
	URL    string
}

func NewSunClient() *SunClient {
	return &SunClient{Client: &http.Client{}, URL: sunAPIURL}
}

func (c *SunClient) Night(ctx context.Context, pos Position, now time.Time) (bool, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(pos.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(pos.Lon, 'f', -1, 64))
	q.Set("formatted", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"?"+q.Encode(), nil)
	if err != nil {
		return false, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("sun api: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return false, err
	}

	doc := gjson.ParseBytes(body)
	if doc.Get("status").String() != "OK" {
		return false, fmt.Errorf("sun api: status %q", doc.Get("status").String())
	}
	sunrise, err := time.Parse(time.RFC3339, doc.Get("results.sunrise").String())
	if err != nil {
		return false, fmt.Errorf("sun api: bad sunrise: %w", err)
	}
	sunset, err := time.Parse(time.RFC3339, doc.Get("results.sunset").String())
	if err != nil {
		return false, fmt.Errorf("sun api: bad sunset: %w", err)
	}

	return now.Before(sunrise) || !now.Before(sunset), nil
}

package ephem

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-skyplan/internal/astro"
)

const (
	// HorizonsAPIURL is the JPL Horizons JSON API endpoint.
	HorizonsAPIURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// RequestTimeout is the HTTP request timeout.
	RequestTimeout = 30 * time.Second
)

// HorizonsOption configures a HorizonsProvider.
type HorizonsOption func(*HorizonsProvider)

// WithBaseURL overrides the Horizons API endpoint.
func WithBaseURL(u string) HorizonsOption {
	return func(p *HorizonsProvider) {
		p.baseURL = u
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) HorizonsOption {
	return func(p *HorizonsProvider) {
		p.client.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) HorizonsOption {
	return func(p *HorizonsProvider) {
		p.client = c
	}
}

// HorizonsProvider queries JPL Horizons for solar system body positions.
// Every call hits the network; wrap it in a Cache for interactive use.
type HorizonsProvider struct {
	baseURL string
	client  *http.Client
}

// NewHorizonsProvider creates a new Horizons API client.
func NewHorizonsProvider(opts ...HorizonsOption) *HorizonsProvider {
	p := &HorizonsProvider{
		baseURL: HorizonsAPIURL,
		client: &http.Client{
			Timeout: RequestTimeout,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements Provider.
func (p *HorizonsProvider) Name() string {
	return "horizons"
}

// Available implements Provider.
func (p *HorizonsProvider) Available(body string) bool {
	_, ok := BodyByName(body)
	return ok
}

// BodyPosition implements Provider. Queries Horizons for the astrometric
// RA/Dec and range of a body. A zero observer requests geocentric output,
// anything else the topocentric view from the site.
func (p *HorizonsProvider) BodyPosition(body string, t time.Time, obs astro.Observer) (astro.Coord, error) {
	info, ok := BodyByName(body)
	if !ok {
		return astro.Coord{}, fmt.Errorf("%w: %q", ErrUnknownBody, body)
	}

	// Build request parameters - values must be quoted with single quotes
	params := url.Values{}
	params.Set("format", "json")
	params.Set("COMMAND", fmt.Sprintf("'%d'", info.HorizonsID))
	params.Set("OBJ_DATA", "NO")
	params.Set("MAKE_EPHEM", "YES")
	params.Set("EPHEM_TYPE", "OBSERVER")
	if obs == (astro.Observer{}) {
		params.Set("CENTER", "'500@399'") // geocenter
	} else {
		params.Set("CENTER", "'coord@399'")
		params.Set("COORD_TYPE", "GEODETIC")
		params.Set("SITE_COORD", fmt.Sprintf("'%.4f,%.4f,%.3f'", obs.LonDeg, obs.LatDeg, obs.ElevM/1000))
	}
	params.Set("START_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t)))
	params.Set("STOP_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t.Add(time.Minute))))
	params.Set("STEP_SIZE", "'1 m'")
	params.Set("QUANTITIES", "'1,20'") // 1=Astrometric RA/Dec, 20=Observer range
	params.Set("ANG_FORMAT", "DEG")
	params.Set("RANGE_UNITS", "AU")

	reqURL := p.baseURL + "?" + params.Encode()

	resp, err := p.client.Get(reqURL)
	if err != nil {
		return astro.Coord{}, fmt.Errorf("horizons request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return astro.Coord{}, fmt.Errorf("horizons returned status %d: %s", resp.StatusCode, string(msg))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return astro.Coord{}, fmt.Errorf("failed to read response: %w", err)
	}

	return parseHorizonsResponse(raw)
}

// horizonsResponse represents the JSON API response.
type horizonsResponse struct {
	Signature struct {
		Version string `json:"version"`
		Source  string `json:"source"`
	} `json:"signature"`
	Result string `json:"result"`
}

// parseHorizonsResponse parses the Horizons JSON envelope and extracts the
// first ephemeris row.
func parseHorizonsResponse(raw []byte) (astro.Coord, error) {
	var resp horizonsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return astro.Coord{}, fmt.Errorf("failed to parse JSON: %w", err)
	}

	// Find the data section between $$SOE and $$EOE markers
	soeIdx := strings.Index(resp.Result, "$$SOE")
	eoeIdx := strings.Index(resp.Result, "$$EOE")
	if soeIdx == -1 || eoeIdx == -1 || soeIdx >= eoeIdx {
		return astro.Coord{}, fmt.Errorf("could not find ephemeris data markers")
	}

	dataSection := resp.Result[soeIdx+5 : eoeIdx]
	for _, line := range strings.Split(dataSection, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		coord, err := parseObserverLine(line)
		if err != nil {
			continue // Skip unparseable lines
		}
		return coord, nil
	}

	return astro.Coord{}, fmt.Errorf("no ephemeris rows in response")
}

// parseObserverLine parses a single ephemeris data line.
// Format for QUANTITIES='1,20' with ANG_FORMAT=DEG:
// 2024-Jun-15 12:00 *m  101.288715 -16.716116  1.65730824380914  -3.1245812
// Fields: date, time, flags, RA, Dec, delta (AU), delta-dot
func parseObserverLine(line string) (astro.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return astro.Coord{}, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	// Parse date/time (first two fields) to confirm this is a data row
	dateStr := fields[0] + " " + fields[1]
	if _, err := parseHorizonsDateTime(dateStr); err != nil {
		return astro.Coord{}, err
	}

	// RA/Dec/delta are the first three numeric fields after the timestamp.
	// Skip any flag fields (like *, *m, Cm, Nm, Am, etc.)
	var vals [3]float64
	numericCount := 0
	for i := 2; i < len(fields) && numericCount < 3; i++ {
		val, err := strconv.ParseFloat(fields[i], 64)
		if err == nil {
			vals[numericCount] = val
			numericCount++
		}
	}

	if numericCount < 3 {
		return astro.Coord{}, fmt.Errorf("could not find RA/Dec/range values")
	}

	return astro.ICRSCoordWithDistance(vals[0], vals[1], astro.AUToKm(vals[2])), nil
}

// parseHorizonsDateTime parses Horizons date format like "2025-Dec-05 00:00".
func parseHorizonsDateTime(s string) (time.Time, error) {
	// Horizons uses format like "2025-Dec-05 00:00"
	t, err := time.Parse("2006-Jan-02 15:04", s)
	if err == nil {
		return t.UTC(), nil
	}

	// Try with seconds
	t, err = time.Parse("2006-Jan-02 15:04:05", s)
	if err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
}

// formatHorizonsTime formats a time for Horizons API.
func formatHorizonsTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}

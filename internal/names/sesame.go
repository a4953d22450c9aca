package names

import (
	"bufio"
	"context"
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
	// DefaultSesameURL is the CDS Sesame name resolver endpoint.
	DefaultSesameURL = "https://cds.unistra.fr/cgi-bin/nph-sesame"

	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 30 * time.Second
)

// SesameClient resolves object names through the CDS Sesame service,
// which federates Simbad, NED, and VizieR.
type SesameClient struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// SesameOption configures a SesameClient.
type SesameOption func(*SesameClient)

// WithURL sets a custom Sesame endpoint.
func WithURL(u string) SesameOption {
	return func(c *SesameClient) {
		c.baseURL = u
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) SesameOption {
	return func(c *SesameClient) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) SesameOption {
	return func(c *SesameClient) {
		c.client = client
	}
}

// NewSesameClient creates a Sesame name resolver client.
func NewSesameClient(opts ...SesameOption) *SesameClient {
	c := &SesameClient{
		baseURL: DefaultSesameURL,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// Resolve implements Resolver. Queries Sesame in plain-text mode against
// all catalogs and returns the J2000 position of the first match.
func (c *SesameClient) Resolve(ctx context.Context, name string) (astro.Coord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return astro.Coord{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	// Path encodes output mode and catalogs: -op is plain text, A means
	// query Simbad, NED, and VizieR in that order.
	reqURL := c.baseURL + "/-op/A?" + url.QueryEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return astro.Coord{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "ls-skyplan/1.0 (Observation Planning Tool)")
	req.Header.Set("Accept", "text/plain")

	resp, err := c.client.Do(req)
	if err != nil {
		return astro.Coord{}, fmt.Errorf("query sesame: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return astro.Coord{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	coord, ok, err := parseSesameBody(resp.Body)
	if err != nil {
		return astro.Coord{}, fmt.Errorf("read response body: %w", err)
	}
	if !ok {
		return astro.Coord{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return coord, nil
}

// parseSesameBody scans the plain-text Sesame reply for the first J2000
// position line. The line looks like:
//
//	%J 101.28715533 -16.71611586 = 06 45 08.917 -16 42 58.02
func parseSesameBody(r io.Reader) (astro.Coord, bool, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "%J ") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}

		ra, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		dec, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}

		return astro.ICRSCoord(ra, dec), true, nil
	}
	if err := scanner.Err(); err != nil {
		return astro.Coord{}, false, err
	}
	return astro.Coord{}, false, nil
}

package diglib

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type httpClient struct {
	userAgent   string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if err := h.rateLimiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("cannot wait for rate limiter: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	return h.client.Do(req) // nolint: bodyclose
}

// NewHTTPClient wraps a given HTTP client with rate limiter and sets a
// user agent for each request.
//
// Rate limiter is shared between all requests made with this client,
// so if you run many lookups concurrently, they are going to respect
// provider quotas. Zero rateLimitInterval disables rate limiting.
// Please see https://pkg.go.dev/golang.org/x/time/rate to get a meaning
// of these parameters.
//
// Unlike a plain http.Client, responses with 4xx and 5xx are returned
// as is: a caller is responsible for status code handling because a
// body of failed response is useful for diagnostics.
func NewHTTPClient(client *http.Client,
	userAgent string,
	rateLimitInterval time.Duration,
	rateLimitBurst int) HTTPClient {
	limit := rate.Inf

	if rateLimitInterval > 0 {
		limit = rate.Every(rateLimitInterval)
	}

	return httpClient{
		userAgent:   userAgent,
		client:      client,
		rateLimiter: rate.NewLimiter(limit, rateLimitBurst),
	}
}

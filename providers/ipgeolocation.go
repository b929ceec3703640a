package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/9seconds/diggeo/diglib"
)

const ipgeolocationMaxResponseSize = 1024 * 1024

type ipgeolocationProvider struct {
	client   diglib.HTTPClient
	endpoint url.URL
}

func (i ipgeolocationProvider) Name() string {
	return NameIPGeolocation
}

func (i ipgeolocationProvider) Lookup(ctx context.Context, apiKey, ip string) (diglib.GeoResult, error) {
	result := diglib.GeoResult{
		IP: ip,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.buildURL(apiKey, ip), nil)
	if err != nil {
		return result, &diglib.NetworkError{
			IP:  ip,
			Err: fmt.Errorf("cannot build a request: %w", redactURLError(err)),
		}
	}

	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return result, &diglib.NetworkError{
			IP:  ip,
			Err: redactURLError(err),
		}
	}

	defer flushResponse(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, ipgeolocationMaxResponseSize))
	if err != nil {
		return result, &diglib.NetworkError{
			IP:  ip,
			Err: fmt.Errorf("cannot read a response: %w", err),
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return result, &diglib.APIError{
			IP:         ip,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	result.Body = body

	return result, nil
}

func (i ipgeolocationProvider) buildURL(apiKey, ip string) string {
	u := i.endpoint
	getQuery := u.Query()

	getQuery.Set("apiKey", apiKey)
	getQuery.Set("ip", ip)

	u.RawQuery = getQuery.Encode()

	return u.String()
}

// NewIPGeolocation returns a provider for ipgeolocation.io. An endpoint
// can have its own query parameters (for example, fields or lang),
// they are kept.
func NewIPGeolocation(client diglib.HTTPClient, endpoint string) (diglib.Provider, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidEndpoint
	}

	return ipgeolocationProvider{
		client:   client,
		endpoint: *u,
	}, nil
}

package diglib

import (
	"context"
	"net"
	"net/http"
	"time"
)

// Provider queries a geolocation service for a single IP address.
// Errors should be one of NetworkError or APIError.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, apiKey, ip string) (GeoResult, error)
}

// Resolver performs a forward lookup of a domain name.
type Resolver interface {
	LookupIP(ctx context.Context, domain string) ([]net.IP, error)
}

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Logger interface {
	Resolved(domain string, ips []net.IP)
	ResolveError(domain string, err error)
	LookupDone(ip string, elapsed time.Duration)
	LookupError(ip string, err error)
}

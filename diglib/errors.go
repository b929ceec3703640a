package diglib

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNoAPIKey       = errors.New("api key is empty")
	ErrNoAddresses    = errors.New("no addresses found")
	ErrDispatcherDown = errors.New("dispatcher was closed")
)

const (
	KindResolution = "resolution error"
	KindNetwork    = "network error"
	KindAPI        = "api error"
	KindUnknown    = "error"
)

// ResolutionError is returned if domain name cannot be resolved into
// at least one IP address.
type ResolutionError struct {
	Domain string
	Err    error
}

func (r *ResolutionError) Error() string {
	return "cannot resolve " + r.Domain + ": " + r.Err.Error()
}

func (r *ResolutionError) Unwrap() error {
	return r.Err
}

// NetworkError is a transport level failure: connection is refused,
// timeout, context is closed, body cannot be read.
type NetworkError struct {
	IP  string
	Err error
}

func (n *NetworkError) Error() string {
	return "cannot reach geolocation service: " + n.Err.Error()
}

func (n *NetworkError) Unwrap() error {
	return n.Err
}

// APIError means that geolocation service has responded with non-2xx
// status code. Body contains a response as is for diagnostics.
type APIError struct {
	IP         string
	StatusCode int
	Body       []byte
}

func (a *APIError) Error() string {
	msg := "geolocation service has responded with " + strconv.Itoa(a.StatusCode)

	if body := strings.TrimSpace(string(a.Body)); body != "" {
		msg += ": " + body
	}

	return msg
}

// ErrorKind returns a human readable kind of error which is used in
// per-target diagnostics.
func ErrorKind(err error) string {
	var (
		resolutionErr *ResolutionError
		networkErr    *NetworkError
		apiErr        *APIError
	)

	switch {
	case errors.As(err, &resolutionErr):
		return KindResolution
	case errors.As(err, &apiErr):
		return KindAPI
	case errors.As(err, &networkErr):
		return KindNetwork
	}

	return KindUnknown
}

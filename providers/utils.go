package providers

import (
	"errors"
	"io"
	"net/url"
)

func flushResponse(resp io.ReadCloser) {
	io.Copy(io.Discard, resp) // nolint: errcheck
	resp.Close()
}

// redactURLError drops a URL from error message: it contains an API
// key in query parameters.
func redactURLError(err error) error {
	var urlErr *url.Error

	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}

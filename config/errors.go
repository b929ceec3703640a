package config

import "github.com/juju/errors"

// ErrNoAPIKey is returned if none of the sources knows api_key or its
// value is empty.
var ErrNoAPIKey = errors.New("api_key not found")

// ConfigError is a fatal configuration problem. It is returned before
// any lookup is attempted: a file that cannot be read or parsed, a
// missing api_key or an invalid optional value.
type ConfigError struct {
	Path string
	Key  string
	Err  error
}

func (c *ConfigError) Error() string {
	msg := "config error"

	if c.Path != "" {
		msg += " in " + c.Path
	}

	if c.Key != "" {
		msg += " (" + c.Key + ")"
	}

	if c.Err != nil {
		msg += ": " + c.Err.Error()
	}

	return msg
}

func (c *ConfigError) Unwrap() error {
	return c.Err
}

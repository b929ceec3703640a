package config

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
)

const (
	DefaultPath              = "/etc/diggeo.conf"
	DefaultEnvPrefix         = "DIGGEO_"
	DefaultEndpoint          = "https://api.ipgeolocation.io/ipgeo"
	DefaultHTTPTimeout       = 10 * time.Second
	DefaultWorkers           = 4
	DefaultRateLimitInterval = 100 * time.Millisecond
	DefaultRateLimitBurst    = 10
)

const (
	KeyAPIKey            = "api_key"
	KeyEndpoint          = "endpoint"
	KeyHTTPTimeout       = "http_timeout"
	KeyWorkers           = "workers"
	KeyRateLimitInterval = "rate_limit_interval"
	KeyRateLimitBurst    = "rate_limit_burst"
	KeyDNSServer         = "dns_server"
)

type Config struct {
	APIKey            string        `conf:"api_key" validate:"required"`
	Endpoint          string        `conf:"endpoint" validate:"required,url"`
	HTTPTimeout       time.Duration `conf:"http_timeout" validate:"gt=0"`
	Workers           int           `conf:"workers" validate:"min=1,max=256"`
	RateLimitInterval time.Duration `conf:"rate_limit_interval" validate:"gte=0"`
	RateLimitBurst    int           `conf:"rate_limit_burst" validate:"min=1"`
	DNSServer         string        `conf:"dns_server" validate:"omitempty,hostname_port"`
}

var validate = newValidator()

// Load builds a configuration out of a source. api_key is mandatory,
// the rest of the values fall back to defaults.
func Load(src Source) (*Config, error) {
	conf := &Config{
		Endpoint:          DefaultEndpoint,
		HTTPTimeout:       DefaultHTTPTimeout,
		Workers:           DefaultWorkers,
		RateLimitInterval: DefaultRateLimitInterval,
		RateLimitBurst:    DefaultRateLimitBurst,
	}

	if value, ok := lookup(src, KeyAPIKey); ok {
		conf.APIKey = value
	}

	if conf.APIKey == "" {
		return nil, &ConfigError{Key: KeyAPIKey, Err: ErrNoAPIKey}
	}

	if value, ok := lookup(src, KeyEndpoint); ok {
		conf.Endpoint = value
	}

	if value, ok := lookup(src, KeyDNSServer); ok {
		conf.DNSServer = value
	}

	durations := []struct {
		key   string
		value *time.Duration
	}{
		{KeyHTTPTimeout, &conf.HTTPTimeout},
		{KeyRateLimitInterval, &conf.RateLimitInterval},
	}

	for _, v := range durations {
		if err := parseDuration(src, v.key, v.value); err != nil {
			return nil, err
		}
	}

	ints := []struct {
		key   string
		value *int
	}{
		{KeyWorkers, &conf.Workers},
		{KeyRateLimitBurst, &conf.RateLimitBurst},
	}

	for _, v := range ints {
		if err := parseInt(src, v.key, v.value); err != nil {
			return nil, err
		}
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// Validate checks value constraints. The first violated field is
// reported as ConfigError.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fieldErr := verrs[0]

		return &ConfigError{
			Key: fieldErr.Field(),
			Err: errors.Errorf("invalid value %v (%s)", fieldErr.Value(), fieldErr.Tag()),
		}
	}

	return &ConfigError{Err: errors.Annotate(err, "cannot validate config")}
}

func lookup(src Source, key string) (string, bool) {
	value, ok := src.Get(key)
	if !ok {
		return "", false
	}

	value = strings.TrimSpace(value)

	return value, value != ""
}

func parseDuration(src Source, key string, value *time.Duration) error {
	raw, ok := lookup(src, key)
	if !ok {
		return nil
	}

	dur, err := time.ParseDuration(raw)
	if err != nil {
		return &ConfigError{Key: key, Err: errors.Annotatef(err, "cannot parse duration %q", raw)}
	}

	*value = dur

	return nil
}

func parseInt(src Source, key string, value *int) error {
	raw, ok := lookup(src, key)
	if !ok {
		return nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return &ConfigError{Key: key, Err: errors.Annotatef(err, "cannot parse integer %q", raw)}
	}

	*value = parsed

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("conf")
	})

	return v
}

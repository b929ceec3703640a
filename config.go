package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/9seconds/diggeo/config"
)

// loadConfig reads a config file and overlays it with DIGGEO_*
// environment variables. Overrides come from command line flags and win
// over both.
func loadConfig(fs afero.Fs, path string, overrides config.MapSource) (*config.Config, error) {
	file, err := config.NewFileSource(fs, path)
	if err != nil {
		return nil, err
	}

	conf, err := config.Load(config.Chain{
		overrides,
		config.EnvSource{Prefix: config.DefaultEnvPrefix},
		file,
	})
	if err != nil {
		return nil, err
	}

	log.WithField("path", file.Path()).Debug("Config is loaded")

	return conf, nil
}

func (o options) overrides() config.MapSource {
	overrides := config.MapSource{}

	if o.dnsServer != "" {
		overrides[config.KeyDNSServer] = o.dnsServer
	}

	return overrides
}

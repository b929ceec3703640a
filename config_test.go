package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/9seconds/diggeo/config"
)

type LoadConfigTestSuite struct {
	suite.Suite

	fs afero.Fs
}

func (suite *LoadConfigTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()

	suite.NoError(afero.WriteFile(suite.fs, config.DefaultPath,
		[]byte("api_key = file-key\nworkers = 2\n"), 0644))
}

func (suite *LoadConfigTestSuite) TestFile() {
	conf, err := loadConfig(suite.fs, config.DefaultPath, config.MapSource{})

	suite.NoError(err)
	suite.Equal("file-key", conf.APIKey)
	suite.Equal(2, conf.Workers)
	suite.Empty(conf.DNSServer)
}

func (suite *LoadConfigTestSuite) TestEnvOverridesFile() {
	suite.T().Setenv("DIGGEO_API_KEY", "env-key")

	conf, err := loadConfig(suite.fs, config.DefaultPath, config.MapSource{})

	suite.NoError(err)
	suite.Equal("env-key", conf.APIKey)
	suite.Equal(2, conf.Workers)
}

func (suite *LoadConfigTestSuite) TestOverridesWin() {
	suite.T().Setenv("DIGGEO_DNS_SERVER", "8.8.8.8:53")

	conf, err := loadConfig(suite.fs, config.DefaultPath, config.MapSource{
		config.KeyDNSServer: "1.1.1.1:53",
	})

	suite.NoError(err)
	suite.Equal("1.1.1.1:53", conf.DNSServer)
}

func (suite *LoadConfigTestSuite) TestMissingFile() {
	_, err := loadConfig(suite.fs, "/nonexisting.conf", config.MapSource{})

	suite.IsType(&config.ConfigError{}, err)
}

func (suite *LoadConfigTestSuite) TestNoAPIKey() {
	suite.NoError(afero.WriteFile(suite.fs, config.DefaultPath, []byte("workers = 2\n"), 0644))

	_, err := loadConfig(suite.fs, config.DefaultPath, config.MapSource{})

	suite.ErrorIs(err, config.ErrNoAPIKey)
}

func TestLoadConfig(t *testing.T) {
	suite.Run(t, &LoadConfigTestSuite{})
}

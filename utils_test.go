package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/9seconds/diggeo/config"
	"github.com/9seconds/diggeo/diglib"
	"github.com/9seconds/diggeo/providers"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(diglib.Report{}))
	assert.Equal(t, exitOK, exitCode(diglib.Report{Total: 3, Succeeded: 3}))
	assert.Equal(t, exitTargetFailed, exitCode(diglib.Report{Total: 3, Succeeded: 2, Failed: 1}))
	assert.Equal(t, exitTargetFailed, exitCode(diglib.Report{Total: 1, Failed: 1}))
}

func TestAddressFamily(t *testing.T) {
	assert.Equal(t, diglib.FamilyAny, addressFamily(false, false))
	assert.Equal(t, diglib.FamilyIPv4, addressFamily(true, false))
	assert.Equal(t, diglib.FamilyIPv6, addressFamily(false, true))
}

func TestValidateOptions(t *testing.T) {
	assert.NoError(t, options{ips: []string{"8.8.8.8"}}.validate())
	assert.NoError(t, options{onlyIPv4: true, digDomains: []string{"example.com"}}.validate())
	assert.Error(t, options{onlyIPv4: true, onlyIPv6: true, digDomains: []string{"example.com"}}.validate())
	assert.Error(t, options{digDomains: []string{"example.com"}, ips: []string{"8.8.8.8"}}.validate())
}

func TestOverrides(t *testing.T) {
	assert.Empty(t, options{}.overrides())
	assert.Equal(t,
		config.MapSource{config.KeyDNSServer: "1.1.1.1:53"},
		options{dnsServer: "1.1.1.1:53"}.overrides())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
	assert.False(t, isTerminal(nil))
}

func TestMakeProvider(t *testing.T) {
	prov, err := makeProvider(&config.Config{
		Endpoint:          config.DefaultEndpoint,
		HTTPTimeout:       time.Second,
		RateLimitInterval: time.Millisecond,
		RateLimitBurst:    1,
	})

	assert.NoError(t, err)
	assert.Equal(t, providers.NameIPGeolocation, prov.Name())

	_, err = makeProvider(&config.Config{Endpoint: "ftp://example.com"})

	assert.Error(t, err)
}

func TestMakeResolver(t *testing.T) {
	assert.NotNil(t, makeResolver(&config.Config{}))
	assert.NotNil(t, makeResolver(&config.Config{DNSServer: "1.1.1.1:53", HTTPTimeout: time.Second}))
}

func TestPrintUsageExamples(t *testing.T) {
	buf := &bytes.Buffer{}

	printUsageExamples(buf)

	assert.Contains(t, buf.String(), "diggeo 8.8.8.8 1.1.1.1")
	assert.Contains(t, buf.String(), "cat ips.txt | diggeo")
	assert.Contains(t, buf.String(), "diggeo --dig example.com")
}

package diglib_test

import (
	"context"
	"net"
	"time"

	"github.com/9seconds/diggeo/diglib"
	"github.com/stretchr/testify/mock"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Name() string {
	return m.Called().String(0)
}

func (m *ProviderMock) Lookup(ctx context.Context, apiKey, ip string) (diglib.GeoResult, error) {
	args := m.Called(ctx, apiKey, ip)

	return args.Get(0).(diglib.GeoResult), args.Error(1)
}

type ResolverMock struct {
	mock.Mock
}

func (m *ResolverMock) LookupIP(ctx context.Context, domain string) ([]net.IP, error) {
	args := m.Called(ctx, domain)

	return args.Get(0).([]net.IP), args.Error(1)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) Resolved(domain string, ips []net.IP) {
	m.Called(domain, ips)
}

func (m *LoggerMock) ResolveError(domain string, err error) {
	m.Called(domain, err)
}

func (m *LoggerMock) LookupDone(ip string, elapsed time.Duration) {
	m.Called(ip, elapsed)
}

func (m *LoggerMock) LookupError(ip string, err error) {
	m.Called(ip, err)
}

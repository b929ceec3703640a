package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/9seconds/diggeo/config"
	"github.com/9seconds/diggeo/diglib"
	"github.com/9seconds/diggeo/providers"
	"github.com/9seconds/diggeo/resolvers"
)

const (
	exitOK           = 0
	exitFatal        = 1
	exitTargetFailed = 2
)

const usageExamples = `Usage examples:
  diggeo 8.8.8.8 1.1.1.1
  cat ips.txt | diggeo
  diggeo --dig example.com
`

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeProvider(conf *config.Config) (diglib.Provider, error) {
	httpClient := diglib.NewHTTPClient(&http.Client{Timeout: conf.HTTPTimeout},
		"diggeo/"+version,
		conf.RateLimitInterval,
		conf.RateLimitBurst)

	return providers.NewIPGeolocation(httpClient, conf.Endpoint)
}

func makeResolver(conf *config.Config) diglib.Resolver {
	if conf.DNSServer != "" {
		return resolvers.NewDNS(conf.DNSServer, conf.HTTPTimeout)
	}

	return resolvers.NewSystem()
}

func addressFamily(onlyIPv4, onlyIPv6 bool) diglib.AddressFamily {
	switch {
	case onlyIPv4:
		return diglib.FamilyIPv4
	case onlyIPv6:
		return diglib.FamilyIPv6
	}

	return diglib.FamilyAny
}

func (o options) validate() error {
	if o.onlyIPv4 && o.onlyIPv6 {
		return errors.New("--ipv4 and --ipv6 are mutually exclusive")
	}

	if len(o.digDomains) > 0 && len(o.ips) > 0 {
		return errors.New("--dig cannot be combined with IP arguments")
	}

	return nil
}

func exitCode(report diglib.Report) int {
	if report.OK() {
		return exitOK
	}

	return exitTargetFailed
}

func isTerminal(stdin io.Reader) bool {
	file, ok := stdin.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printUsageExamples(w io.Writer) {
	io.WriteString(w, usageExamples) // nolint: errcheck
}

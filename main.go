package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/diggeo/config"
	"github.com/9seconds/diggeo/diglib"
)

var version = "dev"

var (
	app = kingpin.New(
		"diggeo",
		"Resolve domains and query IP geolocation for their addresses")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("DIGGEO_DEBUG").
		Bool()
	configPath = app.Flag("config", "Path to the config.").
			Short('c').
			Envar("DIGGEO_CONFIG").
			Default(config.DefaultPath).
			String()
	digDomains = app.Flag("dig", "Domain to resolve before lookup. Can be repeated.").
			PlaceHolder("DOMAIN").
			Strings()
	onlyIPv4 = app.Flag("ipv4", "Lookup only IPv4 addresses of resolved domains.").
			Short('4').
			Bool()
	onlyIPv6 = app.Flag("ipv6", "Lookup only IPv6 addresses of resolved domains.").
			Short('6').
			Bool()
	dnsServer = app.Flag("dns-server", "DNS server to resolve domains with instead of the system resolver.").
			PlaceHolder("HOST:PORT").
			String()
	metricsFile = app.Flag("metrics-file", "Write prometheus metrics into this file after the run.").
			PlaceHolder("PATH").
			String()
	ips = app.Arg("ip", "IP addresses to lookup. If empty, they are read from stdin.").
		Strings()
)

// options is a snapshot of parsed command line flags.
type options struct {
	configPath  string
	digDomains  []string
	ips         []string
	onlyIPv4    bool
	onlyIPv6    bool
	dnsServer   string
	metricsFile string
}

func init() {
	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	opts := options{
		configPath:  *configPath,
		digDomains:  *digDomains,
		ips:         *ips,
		onlyIPv4:    *onlyIPv4,
		onlyIPv6:    *onlyIPv6,
		dnsServer:   *dnsServer,
		metricsFile: *metricsFile,
	}

	os.Exit(run(opts, afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr))
}

func run(opts options, fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := opts.validate(); err != nil {
		fmt.Fprintf(stderr, "diggeo: %v\n", err)

		return exitFatal
	}

	conf, err := loadConfig(fs, opts.configPath, opts.overrides())
	if err != nil {
		fmt.Fprintf(stderr, "diggeo: %v\n", err)

		return exitFatal
	}

	req := diglib.Request{
		APIKey:  conf.APIKey,
		Mode:    diglib.ModeResolveFirst,
		Targets: opts.digDomains,
	}

	if len(opts.digDomains) == 0 {
		if len(opts.ips) == 0 && isTerminal(stdin) {
			printUsageExamples(stderr)

			return exitFatal
		}

		targets, err := diglib.CollectTargets(opts.ips, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "diggeo: %v\n", err)

			return exitFatal
		}

		req.Mode = diglib.ModeDirect
		req.Targets = targets
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	provider, err := makeProvider(conf)
	if err != nil {
		fmt.Fprintf(stderr, "diggeo: %v\n", err)

		return exitFatal
	}

	metrics := diglib.NewMetrics()

	dispatcher, err := diglib.NewDispatcher(diglib.Opts{
		Provider: provider,
		Resolver: makeResolver(conf),
		Logger:   newLogger(),
		Metrics:  metrics,
		Family:   addressFamily(opts.onlyIPv4, opts.onlyIPv6),
		Workers:  conf.Workers,
		Stdout:   stdout,
		Stderr:   stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "diggeo: %v\n", err)

		return exitFatal
	}

	defer dispatcher.Close()

	log.WithFields(log.Fields{
		"provider": provider.Name(),
		"mode":     req.Mode.String(),
		"targets":  len(req.Targets),
		"workers":  conf.Workers,
	}).Debug("Start processing")

	report, err := dispatcher.Run(ctx, req)
	if err != nil {
		fmt.Fprintf(stderr, "diggeo: %v\n", err)

		return exitFatal
	}

	if reportJSON, err := json.Marshal(report); err == nil {
		log.WithField("report", string(reportJSON)).Debug("Finished")
	}

	if opts.metricsFile != "" {
		if err := metrics.WriteTextfile(opts.metricsFile); err != nil {
			log.WithError(err).WithField("path", opts.metricsFile).Warn("Cannot write metrics")
		}
	}

	return exitCode(report)
}

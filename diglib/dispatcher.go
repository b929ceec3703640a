package diglib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
)

const (
	DefaultWorkers = 4

	workerPoolExpireTime = time.Minute
)

var (
	errNoResolver    = errors.New("resolver is not configured")
	errProviderPanic = errors.New("provider has panicked")
)

type Opts struct {
	Provider Provider
	Resolver Resolver
	Logger   Logger
	Metrics  *Metrics
	Family   AddressFamily
	Workers  int
	Stdout   io.Writer
	Stderr   io.Writer
}

type job struct {
	target string
	err    error
}

type lookupRequest struct {
	ctx     context.Context
	index   int
	ip      string
	apiKey  string
	emitter *emitter
	stats   *UsageStats
	wg      *sync.WaitGroup
}

type Dispatcher struct {
	provider   Provider
	resolver   Resolver
	logger     Logger
	metrics    *Metrics
	family     AddressFamily
	stdout     io.Writer
	stderr     io.Writer
	rwmutex    sync.RWMutex
	closeOnce  sync.Once
	workerPool *ants.PoolWithFunc
	closed     bool
}

// Run processes all targets of the request and blocks until every
// result is written. A returned error means that nothing was processed;
// per-target failures are only reflected in the Report.
func (d *Dispatcher) Run(ctx context.Context, req Request) (Report, error) {
	d.rwmutex.RLock()
	defer d.rwmutex.RUnlock()

	if d.closed {
		return Report{}, ErrDispatcherDown
	}

	if strings.TrimSpace(req.APIKey) == "" {
		return Report{}, ErrNoAPIKey
	}

	stats := newUsageStats()
	jobs := d.plan(ctx, req)
	out := newEmitter(d.stdout, d.stderr, len(jobs))
	wg := &sync.WaitGroup{}

	for i, v := range jobs {
		if v.err != nil {
			stats.Used(v.err)
			out.Done(i, outcome{target: v.target, err: v.err})

			continue
		}

		wg.Add(1)

		lookupReq := &lookupRequest{
			ctx:     ctx,
			index:   i,
			ip:      v.target,
			apiKey:  req.APIKey,
			emitter: out,
			stats:   stats,
			wg:      wg,
		}

		if err := d.workerPool.Invoke(lookupReq); err != nil {
			wg.Done()

			err = &NetworkError{
				IP:  v.target,
				Err: fmt.Errorf("cannot schedule a task: %w", err),
			}

			stats.Used(err)
			out.Done(i, outcome{target: v.target, err: err})
		}
	}

	wg.Wait()

	return stats.Report(), nil
}

func (d *Dispatcher) Close() {
	d.rwmutex.Lock()
	defer d.rwmutex.Unlock()

	d.closed = true

	d.closeOnce.Do(func() {
		d.workerPool.Release()
	})
}

func (d *Dispatcher) plan(ctx context.Context, req Request) []job {
	if req.Mode != ModeResolveFirst {
		return lo.Map(req.Targets, func(target string, _ int) job {
			return job{target: target}
		})
	}

	rv := make([]job, 0, len(req.Targets))

	for _, domain := range req.Targets {
		ips, err := d.resolve(ctx, domain)
		if err != nil {
			rv = append(rv, job{target: domain, err: err})

			continue
		}

		for _, ip := range ips {
			rv = append(rv, job{target: ip.String()})
		}
	}

	return rv
}

func (d *Dispatcher) resolve(ctx context.Context, domain string) ([]net.IP, error) {
	var (
		ips []net.IP
		err error
	)

	if d.resolver == nil {
		err = errNoResolver
	} else if ips, err = d.resolver.LookupIP(ctx, domain); err == nil {
		if ips = d.family.Filter(ips); len(ips) == 0 {
			err = ErrNoAddresses
		}
	}

	d.metrics.observeResolution(err)

	if err != nil {
		resolutionErr := &ResolutionError{}

		if !errors.As(err, &resolutionErr) {
			err = &ResolutionError{Domain: domain, Err: err}
		}

		d.logger.ResolveError(domain, err)

		return nil, err
	}

	d.logger.Resolved(domain, ips)

	return ips, nil
}

func (d *Dispatcher) lookup(args interface{}) {
	params := args.(*lookupRequest)
	defer params.wg.Done()

	started := time.Now()
	result, err := d.callProvider(params)
	elapsed := time.Since(started)

	if err != nil {
		if ErrorKind(err) == KindUnknown && !errors.Is(err, errProviderPanic) {
			err = &NetworkError{IP: params.ip, Err: err}
		}

		d.logger.LookupError(params.ip, err)
	} else {
		d.logger.LookupDone(params.ip, elapsed)
	}

	d.metrics.observeLookup(elapsed, err)
	params.stats.Used(err)
	params.emitter.Done(params.index, outcome{
		target: params.ip,
		result: result,
		err:    err,
	})
}

// callProvider converts a provider panic into an error so the outcome
// of the target is still emitted and counted.
func (d *Dispatcher) callProvider(params *lookupRequest) (result GeoResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = GeoResult{IP: params.ip}
			err = fmt.Errorf("%w: %v", errProviderPanic, rec)
		}
	}()

	return d.provider.Lookup(params.ctx, params.apiKey, params.ip)
}

func NewDispatcher(opts Opts) (*Dispatcher, error) {
	if opts.Provider == nil {
		return nil, errors.New("provider is required")
	}

	rv := &Dispatcher{
		provider: opts.Provider,
		resolver: opts.Resolver,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		family:   opts.Family,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
	}

	if rv.logger == nil {
		rv.logger = nopLogger{}
	}

	if rv.metrics == nil {
		rv.metrics = NewMetrics()
	}

	if rv.stdout == nil {
		rv.stdout = io.Discard
	}

	if rv.stderr == nil {
		rv.stderr = io.Discard
	}

	poolSize := opts.Workers
	if poolSize <= 0 {
		poolSize = DefaultWorkers
	}

	pool, err := ants.NewPoolWithFunc(poolSize, rv.lookup,
		ants.WithExpiryDuration(workerPoolExpireTime))
	if err != nil {
		return nil, fmt.Errorf("cannot create a worker pool: %w", err)
	}

	rv.workerPool = pool

	return rv, nil
}

type nopLogger struct{}

func (nopLogger) Resolved(string, []net.IP) {}
func (nopLogger) ResolveError(string, error) {}
func (nopLogger) LookupDone(string, time.Duration) {}
func (nopLogger) LookupError(string, error) {}

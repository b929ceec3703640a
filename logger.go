package main

import (
	"errors"
	"net"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/9seconds/diggeo/diglib"
)

type logger struct {
	resolveLog *log.Entry
	lookupLog  *log.Entry
}

func (l *logger) Resolved(domain string, ips []net.IP) {
	l.resolveLog.WithFields(log.Fields{
		"domain": domain,
		"ips":    ips,
	}).Debug("Domain was resolved")
}

func (l *logger) ResolveError(domain string, err error) {
	l.resolveLog.WithField("domain", domain).WithError(err).Debug("Cannot resolve domain")
}

func (l *logger) LookupDone(ip string, elapsed time.Duration) {
	l.lookupLog.WithFields(log.Fields{
		"ip":      ip,
		"elapsed": elapsed,
	}).Debug("Lookup is done")
}

func (l *logger) LookupError(ip string, err error) {
	fields := log.Fields{
		"ip":   ip,
		"kind": diglib.ErrorKind(err),
	}

	var apiErr *diglib.APIError

	if errors.As(err, &apiErr) {
		fields["status"] = apiErr.StatusCode
	}

	l.lookupLog.WithFields(fields).WithError(err).Debug("Lookup has failed")
}

func newLogger() diglib.Logger {
	return &logger{
		resolveLog: log.WithField("event_name", "resolve"),
		lookupLog:  log.WithField("event_name", "lookup"),
	}
}

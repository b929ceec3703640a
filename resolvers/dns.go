package resolvers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/9seconds/diggeo/diglib"
	"github.com/miekg/dns"
)

const (
	DefaultDNSPort    = "53"
	DefaultDNSTimeout = 5 * time.Second
)

// ErrNXDomain is returned if DNS server says that domain does not exist.
var ErrNXDomain = errors.New("domain does not exist")

type dnsResolver struct {
	udpClient *dns.Client
	tcpClient *dns.Client
	server    string
}

func (d dnsResolver) LookupIP(ctx context.Context, domain string) ([]net.IP, error) {
	if ip := net.ParseIP(domain); ip != nil {
		return []net.IP{ip}, nil
	}

	ips := []net.IP{}

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		found, err := d.query(ctx, domain, qtype)
		if err != nil {
			return nil, &diglib.ResolutionError{
				Domain: domain,
				Err:    err,
			}
		}

		ips = append(ips, found...)
	}

	return resolved(domain, ips)
}

func (d dnsResolver) query(ctx context.Context, domain string, qtype uint16) ([]net.IP, error) {
	msg := &dns.Msg{}

	msg.SetQuestion(dns.Fqdn(domain), qtype)

	resp, _, err := d.udpClient.ExchangeContext(ctx, msg, d.server)
	if err == nil && resp.Truncated {
		resp, _, err = d.tcpClient.ExchangeContext(ctx, msg, d.server)
	}

	if err != nil {
		return nil, fmt.Errorf("cannot query %s for %s: %w", d.server, dns.TypeToString[qtype], err)
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, ErrNXDomain
	default:
		return nil, fmt.Errorf("%s has responded with %s", d.server, dns.RcodeToString[resp.Rcode])
	}

	rv := []net.IP{}

	for _, rr := range resp.Answer {
		switch record := rr.(type) {
		case *dns.A:
			rv = append(rv, record.A)
		case *dns.AAAA:
			rv = append(rv, record.AAAA)
		}
	}

	return rv, nil
}

// NewDNS returns a resolver which queries a given DNS server. If server
// has no port, 53 is used. CNAME chains are expected to be resolved by
// the server, only A and AAAA records of the answer section are taken.
func NewDNS(server string, timeout time.Duration) diglib.Resolver {
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, DefaultDNSPort)
	}

	if timeout <= 0 {
		timeout = DefaultDNSTimeout
	}

	return dnsResolver{
		udpClient: &dns.Client{Net: "udp", Timeout: timeout},
		tcpClient: &dns.Client{Net: "tcp", Timeout: timeout},
		server:    server,
	}
}

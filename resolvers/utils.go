package resolvers

import (
	"net"

	"github.com/9seconds/diggeo/diglib"
	"github.com/samber/lo"
)

func uniqueIPs(ips []net.IP) []net.IP {
	return lo.UniqBy(ips, func(ip net.IP) string {
		return ip.String()
	})
}

func resolved(domain string, ips []net.IP) ([]net.IP, error) {
	ips = uniqueIPs(ips)

	if len(ips) == 0 {
		return nil, &diglib.ResolutionError{
			Domain: domain,
			Err:    diglib.ErrNoAddresses,
		}
	}

	return ips, nil
}

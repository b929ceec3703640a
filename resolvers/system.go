package resolvers

import (
	"context"
	"net"

	"github.com/9seconds/diggeo/diglib"
	"github.com/samber/lo"
)

type systemResolver struct {
	resolver *net.Resolver
}

func (s systemResolver) LookupIP(ctx context.Context, domain string) ([]net.IP, error) {
	addrs, err := s.resolver.LookupIPAddr(ctx, domain)
	if err != nil {
		return nil, &diglib.ResolutionError{
			Domain: domain,
			Err:    err,
		}
	}

	return resolved(domain, lo.Map(addrs, func(addr net.IPAddr, _ int) net.IP {
		return addr.IP
	}))
}

func NewSystem() diglib.Resolver {
	return systemResolver{
		resolver: net.DefaultResolver,
	}
}

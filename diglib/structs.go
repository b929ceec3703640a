package diglib

import (
	"encoding/json"
	"net"
	"time"

	"github.com/samber/lo"
)

type Mode uint8

const (
	// ModeDirect means that targets are IP addresses already.
	ModeDirect Mode = iota

	// ModeResolveFirst means that targets are domain names which have to
	// be resolved before querying.
	ModeResolveFirst
)

func (m Mode) String() string {
	if m == ModeResolveFirst {
		return "resolve-first"
	}

	return "direct"
}

// AddressFamily narrows a set of resolved addresses.
type AddressFamily uint8

const (
	FamilyAny AddressFamily = iota
	FamilyIPv4
	FamilyIPv6
)

func (a AddressFamily) Filter(ips []net.IP) []net.IP {
	return lo.Filter(ips, func(ip net.IP, _ int) bool {
		switch a {
		case FamilyIPv4:
			return ip.To4() != nil
		case FamilyIPv6:
			return ip.To4() == nil && ip.To16() != nil
		}

		return true
	})
}

type Request struct {
	Mode    Mode
	Targets []string
	APIKey  string
}

// GeoResult is a raw response of geolocation service. Body is never
// parsed, it goes to the output as is.
type GeoResult struct {
	IP   string
	Body []byte
}

type Report struct {
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

func (r Report) OK() bool {
	return r.Failed == 0
}

func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Total     int     `json:"total"`
		Succeeded int     `json:"succeeded"`
		Failed    int     `json:"failed"`
		Elapsed   float64 `json:"elapsed_seconds"`
	}{
		Total:     r.Total,
		Succeeded: r.Succeeded,
		Failed:    r.Failed,
		Elapsed:   r.Elapsed.Seconds(),
	})
}

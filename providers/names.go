package providers

const (
	// Identifier for ipgeolocation.io.
	NameIPGeolocation = "ipgeolocation"
)

package mocks

import "context"

// HostResolver is a mockable model.HostResolver.
type HostResolver struct {
	MockHostname func() string
	MockFQDN     func(ctx context.Context) string
}

// Hostname calls MockHostname.
func (r *HostResolver) Hostname() string {
	return r.MockHostname()
}

// FQDN calls MockFQDN.
func (r *HostResolver) FQDN(ctx context.Context) string {
	return r.MockFQDN(ctx)
}

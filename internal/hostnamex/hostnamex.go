// Package hostnamex memoizes the names identifying the host: the
// short hostname reported by the kernel and the fully qualified
// domain name obtained by asking DNS to expand it.
package hostnamex

import (
	"context"
	"os"
	"sync"

	"github.com/osident/osident/internal/model"
)

// Resolver memoizes the host names. Both names follow the contract
// of the login-name resolver: resolved at most once on success,
// retried after failures, never changed afterwards.
//
// The zero value is ready to use and safe for concurrent use.
type Resolver struct {
	// fqdn is the cached fully qualified domain name.
	fqdn string

	// fqdnInitialized records whether fqdn contains a resolved value.
	fqdnInitialized bool

	// hostname is the cached short hostname.
	hostname string

	// hostnameInitialized records whether hostname is resolved.
	hostnameInitialized bool

	// mu guards every other field.
	mu sync.Mutex

	// osHostname allows mocking os.Hostname for testing.
	osHostname func() (string, error)

	// queryFQDN allows mocking the DNS query for testing.
	queryFQDN func(ctx context.Context, hostname string) (string, error)
}

var _ model.HostResolver = &Resolver{}

// Hostname implements model.HostResolver.Hostname. The returned
// value is empty when the kernel cannot tell us the hostname, in
// which case the next call retries.
func (r *Resolver) Hostname() string {
	defer r.mu.Unlock()
	r.mu.Lock()
	return r.hostnameLocked()
}

// hostnameLocked resolves and caches the short hostname. The caller
// must hold r.mu.
func (r *Resolver) hostnameLocked() string {
	if r.hostnameInitialized {
		return r.hostname
	}
	get := r.osHostname
	if get == nil {
		get = os.Hostname
	}
	name, err := get()
	if err != nil || name == "" {
		return ""
	}
	r.hostname = name
	r.hostnameInitialized = true
	return r.hostname
}

// FQDN implements model.HostResolver.FQDN, asking DNS to expand the
// short hostname on first use. The returned value is empty when the
// hostname or the DNS query fails; the next call retries.
func (r *Resolver) FQDN(ctx context.Context) string {
	defer r.mu.Unlock()
	r.mu.Lock()
	if r.fqdnInitialized {
		return r.fqdn
	}
	hostname := r.hostnameLocked()
	if hostname == "" {
		return ""
	}
	query := r.queryFQDN
	if query == nil {
		query = queryFQDN
	}
	fqdn, err := query(ctx, hostname)
	if err != nil || fqdn == "" {
		return ""
	}
	r.fqdn = fqdn
	r.fqdnInitialized = true
	return r.fqdn
}

// defaultResolver is the process-wide resolver behind Hostname and FQDN.
var defaultResolver = &Resolver{}

// Hostname returns the short hostname using the process-wide Resolver.
func Hostname() string {
	return defaultResolver.Hostname()
}

// FQDN returns the fully qualified domain name using the process-wide
// Resolver.
func FQDN(ctx context.Context) string {
	return defaultResolver.FQDN(ctx)
}

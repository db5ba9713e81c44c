// Package model defines the interfaces shared across this library.
package model

import "context"

// UserResolver resolves the login name of the user that owns the
// current process.
type UserResolver interface {
	// Name returns the login name or an empty string when the name
	// has not been resolved so far. Implementations cache the first
	// successful resolution and retry after failures.
	Name() string
}

// HostResolver resolves the names identifying the host.
type HostResolver interface {
	// Hostname returns the short hostname or an empty string.
	Hostname() string

	// FQDN returns the fully qualified domain name or an empty
	// string. The context bounds any network work.
	FQDN(ctx context.Context) string
}

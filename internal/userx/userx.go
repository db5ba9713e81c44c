// Package userx resolves the login name of the user that owns the
// current process and caches it for the lifetime of the process.
//
// The operating system is consulted at most once when resolution
// succeeds. When the user database has no usable entry we return an
// empty string, surface no error, and try again on the next call.
package userx

import (
	"os"
	"sync"

	"github.com/osident/osident/internal/model"
)

// Resolver memoizes the login name of the process's effective user.
//
// The zero value is ready to use. A Resolver is safe for concurrent
// use: the first caller to acquire the lock performs the OS lookup
// and later callers observe the cached name without touching the OS
// again.
type Resolver struct {
	// env optionally lists environment variables consulted, in
	// order, before the OS lookup.
	env []string

	// getenv allows mocking os.Getenv for testing.
	getenv func(key string) string

	// initialized records whether name contains a resolved value.
	// Once true, name never changes.
	initialized bool

	// lookup allows mocking the OS lookup for testing.
	lookup func() (string, error)

	// mu guards initialized and name.
	mu sync.Mutex

	// name is the cached login name.
	name string
}

var _ model.UserResolver = &Resolver{}

// NewResolver creates a Resolver that consults the given environment
// variables, in order, before reading the system user database. With
// no arguments the resolver only uses the user database.
func NewResolver(env ...string) *Resolver {
	return &Resolver{env: env}
}

// Name implements model.UserResolver.Name. The returned value is
// empty when the name cannot be resolved, in which case the next
// call resolves again.
func (r *Resolver) Name() string {
	defer r.mu.Unlock()
	r.mu.Lock()
	if !r.initialized {
		r.resolveLocked()
	}
	return r.name
}

// resolveLocked performs a single resolution attempt. The caller must
// hold r.mu. On failure the resolver stays uninitialized so that the
// next call retries.
func (r *Resolver) resolveLocked() {
	getenv := r.getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, key := range r.env {
		if name := getenv(key); name != "" {
			r.name = name
			r.initialized = true
			return
		}
	}
	lookup := r.lookup
	if lookup == nil {
		lookup = lookupLoginName
	}
	name, err := lookup()
	if err != nil || name == "" {
		return
	}
	r.name = name
	r.initialized = true
}

// defaultResolver is the process-wide resolver behind Username.
var defaultResolver = &Resolver{}

// Username returns the login name of the process's effective user
// using the process-wide Resolver. See Resolver.Name.
func Username() string {
	return defaultResolver.Name()
}

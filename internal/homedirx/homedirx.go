// Package homedirx memoizes the current user's home directory. The
// underlying lookup may shell out or read the user database, which
// is expensive enough that we only want to pay for it once.
package homedirx

import (
	"sync"

	homedir "github.com/mitchellh/go-homedir"
)

// Resolver memoizes the home directory path. The contract is the one
// of the login-name resolver: resolve at most once on success, retry
// after failures, never change the cached value afterwards.
//
// The zero value is ready to use and safe for concurrent use.
type Resolver struct {
	// dir allows mocking homedir.Dir for testing.
	dir func() (string, error)

	// initialized records whether path contains a resolved value.
	initialized bool

	// mu guards initialized and path.
	mu sync.Mutex

	// path is the cached home directory.
	path string
}

// Path returns the current user's home directory or an empty string
// when it cannot be determined, in which case the next call retries.
func (r *Resolver) Path() string {
	defer r.mu.Unlock()
	r.mu.Lock()
	if r.initialized {
		return r.path
	}
	dir := r.dir
	if dir == nil {
		dir = homedir.Dir
	}
	path, err := dir()
	if err != nil || path == "" {
		return ""
	}
	r.path = path
	r.initialized = true
	return r.path
}

// defaultResolver is the process-wide resolver behind Path.
var defaultResolver = &Resolver{}

// Path returns the current user's home directory using the
// process-wide Resolver.
func Path() string {
	return defaultResolver.Path()
}

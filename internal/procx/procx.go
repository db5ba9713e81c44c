// Package procx returns stable identifiers for the current process.
package procx

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// startTime approximates the process start time. It is captured when
// this package is initialized.
var startTime = time.Now()

var (
	// instanceID is the lazily minted per-process identifier.
	instanceID string

	// mu guards instanceID.
	mu sync.Mutex
)

// InstanceID returns an opaque identifier minted on first use and
// stable until the process exits. Distinct processes obtain distinct
// identifiers.
func InstanceID() string {
	defer mu.Unlock()
	mu.Lock()
	if instanceID == "" {
		instanceID = uuid.NewString()
	}
	return instanceID
}

// PID returns the id of the current process.
func PID() int {
	return os.Getpid()
}

// StartTime returns the wall-clock time at which this package was
// initialized, which approximates the process start time.
func StartTime() time.Time {
	return startTime
}

// Package osident resolves and caches the identity under which the
// current process runs: the login name of its effective user, the
// home directory, the host names, the platform, and per-process
// identifiers.
//
// Every fact is resolved by asking the operating system at most once
// per process when the lookup succeeds. A lookup that fails yields an
// empty string and surfaces no error; the next call for the same fact
// retries. Callers therefore cannot distinguish "not yet looked up"
// from "looked up and unknown", which is fine for the intended use:
// attaching best-effort identity to client requests.
package osident

import (
	"context"
	"os"
	"time"

	"github.com/osident/osident/internal/homedirx"
	"github.com/osident/osident/internal/hostnamex"
	"github.com/osident/osident/internal/idmap"
	"github.com/osident/osident/internal/model"
	"github.com/osident/osident/internal/platformx"
	"github.com/osident/osident/internal/procx"
	"github.com/osident/osident/internal/userx"
)

// Version is the osident version.
const Version = "0.3.0"

// Identity is a snapshot of the facts we can resolve about the
// current process. Fields that could not be resolved are empty.
type Identity struct {
	// Arch is the normalized architecture name.
	Arch string `json:"arch"`

	// FQDN is the fully qualified domain name of the host.
	FQDN string `json:"fqdn"`

	// Groupname is the name of the process's effective group.
	Groupname string `json:"groupname"`

	// HomeDir is the current user's home directory.
	HomeDir string `json:"home_dir"`

	// Hostname is the short hostname.
	Hostname string `json:"hostname"`

	// InstanceID identifies this process instance.
	InstanceID string `json:"instance_id"`

	// PID is the process id.
	PID int `json:"pid"`

	// Platform is the normalized platform name.
	Platform string `json:"platform"`

	// StartTime approximates the process start time.
	StartTime time.Time `json:"start_time"`

	// Username is the login name of the process's effective user.
	Username string `json:"username"`
}

// Username returns the login name of the process's effective user,
// resolved once and then served from cache. Returns an empty string
// when the user database has no usable entry; the next call retries.
func Username() string {
	return userx.Username()
}

// NewUserResolver creates a login-name resolver that consults the
// given environment variables, in order, before the OS lookup. The
// returned resolver maintains its own cache, independent of the one
// behind Username.
func NewUserResolver(env ...string) model.UserResolver {
	return userx.NewResolver(env...)
}

// LookupUsername returns the login name for the given uid, or an
// empty string when the user database has no such entry. Successful
// lookups are cached for the lifetime of the process.
func LookupUsername(uid int) string {
	return idmap.Username(uid)
}

// LookupGroupname is like LookupUsername but for group ids.
func LookupGroupname(gid int) string {
	return idmap.Groupname(gid)
}

// HomeDir returns the current user's home directory or an empty
// string when it cannot be determined.
func HomeDir() string {
	return homedirx.Path()
}

// Hostname returns the short hostname or an empty string.
func Hostname() string {
	return hostnamex.Hostname()
}

// FQDN returns the fully qualified domain name of the host or an
// empty string. The context bounds the DNS work performed by the
// first successful call.
func FQDN(ctx context.Context) string {
	return hostnamex.FQDN(ctx)
}

// PID returns the id of the current process.
func PID() int {
	return procx.PID()
}

// InstanceID returns an opaque identifier for this process instance,
// minted on first use and stable until the process exits.
func InstanceID() string {
	return procx.InstanceID()
}

// StartTime approximates the time at which the process started.
func StartTime() time.Time {
	return procx.StartTime()
}

// Platform returns the normalized platform name.
func Platform() string {
	return platformx.Name()
}

// Arch returns the normalized architecture name.
func Arch() string {
	return platformx.Arch()
}

// Resolve returns a snapshot of every fact we can resolve right now.
// Resolution never fails: facts that cannot be resolved are empty
// strings in the snapshot. The logger, if not nil, receives a debug
// message per fact.
func Resolve(ctx context.Context, logger model.Logger) *Identity {
	logger = model.ValidLoggerOrDefault(logger)
	identity := &Identity{
		Arch:       Arch(),
		FQDN:       FQDN(ctx),
		Groupname:  LookupGroupname(os.Getegid()),
		HomeDir:    HomeDir(),
		Hostname:   Hostname(),
		InstanceID: InstanceID(),
		PID:        PID(),
		Platform:   Platform(),
		StartTime:  StartTime(),
		Username:   Username(),
	}
	logger.Debugf("osident: username: %s", identity.Username)
	logger.Debugf("osident: groupname: %s", identity.Groupname)
	logger.Debugf("osident: home: %s", identity.HomeDir)
	logger.Debugf("osident: hostname: %s", identity.Hostname)
	logger.Debugf("osident: fqdn: %s", identity.FQDN)
	logger.Debugf("osident: platform: %s/%s", identity.Platform, identity.Arch)
	logger.Debugf("osident: pid: %d", identity.PID)
	logger.Debugf("osident: instance: %s", identity.InstanceID)
	return identity
}

// Package platformx returns normalized platform and architecture
// names for identity reporting.
package platformx

import "runtime"

// Name returns the platform name. The returned value is one of:
//
// 1. "android"
//
// 2. "freebsd"
//
// 3. "ios"
//
// 4. "linux"
//
// 5. "macos"
//
// 6. "openbsd"
//
// 7. "windows"
//
// 8. "unknown"
func Name() string {
	return name(runtime.GOOS)
}

// name is a utility function for implementing Name.
func name(goos string) string {
	switch goos {
	case "android", "freebsd", "ios", "linux", "openbsd", "windows":
		return goos
	case "darwin":
		return "macos"
	}
	return "unknown"
}

// Arch returns the normalized architecture name, one of "386",
// "amd64", "arm", "arm64", "riscv64", and "unknown".
func Arch() string {
	return arch(runtime.GOARCH)
}

// arch is a utility function for implementing Arch.
func arch(goarch string) string {
	switch goarch {
	case "386", "amd64", "arm", "arm64", "riscv64":
		return goarch
	}
	return "unknown"
}

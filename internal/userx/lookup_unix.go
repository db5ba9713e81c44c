//go:build unix

package userx

import (
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

// lookupLoginName reads the login name of the process's effective
// user from the system user database.
func lookupLoginName() (string, error) {
	pw, err := user.LookupId(strconv.Itoa(unix.Geteuid()))
	if err != nil {
		return "", err
	}
	return pw.Username, nil
}

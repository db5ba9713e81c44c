//go:build windows

package userx

import "os/user"

// lookupLoginName obtains the login name from the process token.
// There is no effective uid on windows, so we defer to os/user.
func lookupLoginName() (string, error) {
	current, err := user.Current()
	if err != nil {
		return "", err
	}
	return current.Username, nil
}

// Package runtimex contains runtime extensions.
package runtimex

import "fmt"

// PanicOnError calls panic() if err is not nil.
func PanicOnError(err error, message string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", message, err))
	}
}

// Assert calls panic() if assertion is false.
func Assert(assertion bool, message string) {
	if !assertion {
		panic(message)
	}
}

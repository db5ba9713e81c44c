package osident_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/osident/osident"
	"github.com/osident/osident/internal/mocks"
)

func TestUsernameIsStable(t *testing.T) {
	first := osident.Username()
	second := osident.Username()
	if first != second {
		t.Fatal("expected a stable value")
	}
}

func TestResolveSnapshotIsStable(t *testing.T) {
	ctx := context.Background()
	first := osident.Resolve(ctx, nil)
	second := osident.Resolve(ctx, nil)
	// The FQDN may legitimately resolve on retry when the first
	// attempt failed, so align it before diffing.
	second.FQDN = first.FQDN
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}
}

func TestResolveBasicFacts(t *testing.T) {
	identity := osident.Resolve(context.Background(), nil)
	if identity.PID != os.Getpid() {
		t.Fatal("unexpected pid")
	}
	if identity.InstanceID == "" {
		t.Fatal("expected a nonempty instance id")
	}
	if identity.Platform == "" || identity.Arch == "" {
		t.Fatal("expected nonempty platform and arch")
	}
	if identity.StartTime.IsZero() {
		t.Fatal("expected a nonzero start time")
	}
	if identity.Username != osident.Username() {
		t.Fatal("snapshot and accessor disagree on the username")
	}
}

func TestResolveLogsEachFact(t *testing.T) {
	var debugfCalls int
	logger := &mocks.Logger{
		MockDebugf: func(format string, v ...interface{}) {
			debugfCalls++
		},
	}
	osident.Resolve(context.Background(), logger)
	if debugfCalls < 1 {
		t.Fatal("expected debug logging")
	}
}

func TestNewUserResolverEnvOverride(t *testing.T) {
	const variable = "OSIDENT_TEST_USER"
	if err := os.Setenv(variable, "wayne"); err != nil {
		t.Fatal(err)
	}
	defer os.Unsetenv(variable)
	resolver := osident.NewUserResolver(variable)
	if resolver.Name() != "wayne" {
		t.Fatal("expected the environment override to win")
	}
}

func TestLookupUsernameUnknownID(t *testing.T) {
	// Nothing should exist at this uid; we mostly care that the
	// call is silent and repeatable.
	if osident.LookupUsername(-42) != "" {
		t.Fatal("expected empty name")
	}
	if osident.LookupUsername(-42) != "" {
		t.Fatal("expected empty name")
	}
}

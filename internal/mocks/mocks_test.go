package mocks

import (
	"context"
	"testing"

	"github.com/osident/osident/internal/model"
)

var (
	_ model.UserResolver = &UserResolver{}
	_ model.HostResolver = &HostResolver{}
	_ model.Logger       = &Logger{}
)

func TestUserResolver(t *testing.T) {
	expected := "kilgore"
	r := &UserResolver{MockName: func() string {
		return expected
	}}
	if r.Name() != expected {
		t.Fatal("unexpected name")
	}
}

func TestHostResolver(t *testing.T) {
	t.Run("Hostname", func(t *testing.T) {
		r := &HostResolver{MockHostname: func() string {
			return "galapagos"
		}}
		if r.Hostname() != "galapagos" {
			t.Fatal("unexpected hostname")
		}
	})

	t.Run("FQDN", func(t *testing.T) {
		r := &HostResolver{MockFQDN: func(ctx context.Context) string {
			return "galapagos.example.com"
		}}
		if r.FQDN(context.Background()) != "galapagos.example.com" {
			t.Fatal("unexpected fqdn")
		}
	})
}

func TestLogger(t *testing.T) {
	var called int
	lo := &Logger{
		MockDebug: func(msg string) {
			called++
		},
		MockDebugf: func(format string, v ...interface{}) {
			called++
		},
		MockWarn: func(msg string) {
			called++
		},
		MockWarnf: func(format string, v ...interface{}) {
			called++
		},
	}
	lo.Debug("foobar")
	lo.Debugf("%s", "foobar")
	lo.Warn("foobar")
	lo.Warnf("%s", "foobar")
	if called != 4 {
		t.Fatal("some mocks were not called")
	}
}

package homedirx

import (
	"errors"
	"testing"
)

func TestResolverReturnsStableValue(t *testing.T) {
	var calls int
	r := &Resolver{dir: func() (string, error) {
		calls++
		return "/home/kilgore", nil
	}}
	if r.Path() != "/home/kilgore" {
		t.Fatal("unexpected path")
	}
	if r.Path() != "/home/kilgore" {
		t.Fatal("unexpected path")
	}
	if calls != 1 {
		t.Fatal("expected a single lookup, got", calls)
	}
}

func TestResolverRetriesAfterFailure(t *testing.T) {
	expected := errors.New("mocked error")
	var calls int
	r := &Resolver{dir: func() (string, error) {
		calls++
		if calls < 2 {
			return "", expected
		}
		return "/home/montana", nil
	}}
	if r.Path() != "" {
		t.Fatal("expected empty path on failure")
	}
	if r.Path() != "/home/montana" {
		t.Fatal("expected the retry to succeed")
	}
}

func TestResolverDoesNotCacheEmptyPath(t *testing.T) {
	var calls int
	r := &Resolver{dir: func() (string, error) {
		calls++
		return "", nil
	}}
	for i := 0; i < 3; i++ {
		if r.Path() != "" {
			t.Fatal("expected empty path")
		}
	}
	if calls != 3 {
		t.Fatal("expected one lookup per call, got", calls)
	}
}

func TestPathIsStable(t *testing.T) {
	if Path() != Path() {
		t.Fatal("expected a stable value")
	}
}

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return &StaticConfig{Path: t.TempDir()}
}

func TestRegistryRoundTrip(t *testing.T) {
	reg, err := Load(testConfig(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Ref{File: "2014", Label: "2014-12-31 Wednesday"}
	if err := reg.Put("20141231-200800-k3v9a", want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := reg.Get("20141231-200800-k3v9a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRegistryUnknownID(t *testing.T) {
	reg, err := Load(testConfig(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := reg.Get("nope"); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("expected ErrUnknownID, got %v", err)
	}
}

func TestNewIDUnique(t *testing.T) {
	reg, err := Load(testConfig(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	now := time.Date(2014, time.December, 31, 20, 8, 0, 0, time.Local)
	a := reg.NewID(now)
	b := reg.NewID(now)
	if a == b {
		t.Fatalf("two fresh ids collided: %q", a)
	}
	const prefix = "20141231-200800-"
	if a[:len(prefix)] != prefix {
		t.Fatalf("id %q does not start with %q", a, prefix)
	}
}

func TestReindex(t *testing.T) {
	cfg := testConfig(t)
	content := "* 2014\n** 2014-12 December\n" +
		"*** 2014-12-31 Wednesday\n:PROPERTIES:\n:id: a1\n:END:\n" +
		"*** 2014-12-31 Wednesday\n:PROPERTIES:\n:id: a2\n:END:\n"
	if err := os.WriteFile(filepath.Join(cfg.BasePath(), "2014"), []byte(content), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Non-year files are skipped.
	if err := os.WriteFile(filepath.Join(cfg.BasePath(), "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	reg, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	n, err := Reindex(cfg, reg)
	if err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if n != 2 {
		t.Fatalf("indexed %d entries, want 2", n)
	}

	all := reg.All(context.Background())
	if len(all) != 2 {
		t.Fatalf("All returned %d refs", len(all))
	}
	if ref := all["a2"]; ref.File != "2014" || ref.Label != "2014-12-31 Wednesday" {
		t.Fatalf("a2 ref: %+v", ref)
	}
}

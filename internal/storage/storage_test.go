package storage

import (
	"os"
	"testing"
)

func TestStoreGetPutRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "chessplay-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)
	t.Setenv("XDG_DATA_HOME", tmpDir)

	s, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	const hash = uint64(0x1234567890abcdef)

	if _, found := s.Get(ProbeBook, hash); found {
		t.Error("expected miss on empty store")
	}

	want := CachedProbe{Found: true, Move: 796, Eval: 35}
	if err := s.Put(ProbeBook, hash, want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, found := s.Get(ProbeBook, hash)
	if !found {
		t.Fatal("expected hit after Put")
	}
	if got != want {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, want)
	}

	// A different kind at the same hash must not collide.
	if _, found := s.Get(ProbeTablebase, hash); found {
		t.Error("expected miss for a different probe kind at the same hash")
	}
}

func TestDataPaths(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "chessplay-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)
	t.Setenv("XDG_DATA_HOME", tmpDir)

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}
}

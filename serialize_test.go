// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	v := NewVolume()
	writes := [][4]int32{{1, 2, 3, 11}, {6, 0, 4, 22}, {-8, 100, -3, 33}}
	for _, w := range writes {
		if err := v.SetVoxel(w[0], w[1], w[2], MaterialId(w[3])); err != nil {
			t.Fatalf("SetVoxel: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "volume.bin")
	if err := v.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewVolume()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, w := range writes {
		if got := loaded.Voxel(w[0], w[1], w[2]); got != MaterialId(w[3]) {
			t.Fatalf("loaded Voxel(%d,%d,%d) = %d, want %d", w[0], w[1], w[2], got, w[3])
		}
	}
	if loaded.CountNodes() != v.CountNodes() {
		t.Fatalf("loaded CountNodes = %d, want %d", loaded.CountNodes(), v.CountNodes())
	}
}

func TestSaveLoadUniformFillRoundTrip(t *testing.T) {
	t.Parallel()

	v := NewVolume()
	v.Fill(42)

	path := filepath.Join(t.TempDir(), "uniform.bin")
	if err := v.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewVolume()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := loaded.Voxel(123, -456, 789); got != 42 {
		t.Fatalf("loaded Voxel = %d, want 42", got)
	}
	if got := loaded.CountNodes(); got != 0 {
		t.Fatalf("loaded CountNodes = %d, want 0 for a uniform fill", got)
	}
}

func TestLoadMissingFileReturnsErrFileNotFound(t *testing.T) {
	t.Parallel()

	v := NewVolume()
	err := v.Load(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	if err != ErrFileNotFound {
		t.Fatalf("Load on missing file: got err=%v, want ErrFileNotFound", err)
	}
}

func TestLoadResetsHistoryAndTrackEdits(t *testing.T) {
	t.Parallel()

	v := NewVolume()
	if err := v.SetVoxel(1, 1, 1, 1); err != nil {
		t.Fatalf("SetVoxel: %v", err)
	}
	path := filepath.Join(t.TempDir(), "volume.bin")
	if err := v.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewVolume()
	loaded.SetTrackEdits(true)
	if err := loaded.SetVoxel(2, 2, 2, 2); err != nil {
		t.Fatalf("SetVoxel: %v", err)
	}
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.TrackEdits() {
		t.Fatal("Load should reset trackEdits to false")
	}
	if history, current := loaded.Internals().RootHistory(); len(history) != 1 || current != 0 {
		t.Fatalf("Load should reset history to a single entry, got history=%v current=%d", history, current)
	}
}

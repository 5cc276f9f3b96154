// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

import (
	"github.com/pkg/errors"

	"github.com/cubiquity/voxeldag/internal/nodestore"
)

// ErrOutOfSpace is returned when an edit cannot allocate a new unshared
// node because the edit region has collided with the baked region (spec
// §7). A failed edit records no new root, so the live root stays the
// pre-edit root. With trackEdits on, no node is mutated in place and the
// volume is unchanged; with trackEdits off, SetVoxel likewise changes
// nothing, while FillBrush and AddVolume may already have rewritten edit
// nodes in place for the octants they processed before the failure.
var ErrOutOfSpace = errors.New("voxeldag: out of space for unshared edits")

// ErrFileNotFound is returned by Load when the underlying file does not
// exist. The Volume is left untouched.
var ErrFileNotFound = errors.New("voxeldag: file not found")

// translateNodestoreErr maps internal/nodestore's sentinel errors onto the
// public ones, so callers never need to import the internal package to
// compare against errors.Is.
func translateNodestoreErr(err error) error {
	if errors.Is(err, nodestore.ErrOutOfSpace) {
		return ErrOutOfSpace
	}
	return err
}

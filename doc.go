// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

// Package voxeldag is a sparse-voxel octree store for a cubic grid of
// 16-bit materials spanning the full signed 32-bit coordinate range on
// every axis. It represents the grid as a directed acyclic graph of
// fixed 8-child nodes: homogeneous subtrees collapse to a single
// material sentinel, and Bake deduplicates structurally identical
// subtrees into shared, canonical storage.
//
// A Volume supports point edits (SetVoxel), shape fills (Fill,
// FillBrush), combining two volumes (AddVolume), linear undo/redo over
// its edit history, and saving/loading a baked snapshot to a file. See
// internal/nodestore for the backing dual-region node pool.
//
// The zero value is not ready to use; construct a Volume with NewVolume.
// A Volume is single-threaded: no method is reentrant or safe to call
// concurrently, and callers must serialize access externally.
package voxeldag

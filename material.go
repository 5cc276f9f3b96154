// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

import "github.com/cubiquity/voxeldag/internal/nodestore"

// MaterialId identifies the material occupying a single voxel, or an
// entire homogeneous subtree when it appears as a node index. The full
// 16-bit range [0, 65535] is valid; material 0 is "empty" for the purposes
// of Volume.AddVolume (spec §4.5).
type MaterialId uint16

// MaterialCount is the number of distinct MaterialId values.
const MaterialCount = nodestore.MaterialCount

// EmptyMaterial is the material treated as transparent/absent by
// Volume.AddVolume: an rhs voxel of this material never overwrites lhs.
const EmptyMaterial MaterialId = 0

// nodeIndex is the single namespace covering material sentinels, baked
// nodes and edit nodes (spec §3). It is kept distinct from MaterialId at
// this public boundary, and only collapsed to the shared uint32 storage
// representation inside internal/nodestore.
type nodeIndex = uint32

func materialNodeIndex(m MaterialId) nodeIndex {
	return nodeIndex(m)
}

func isMaterialIndex(idx nodeIndex) bool {
	return nodestore.IsMaterialNode(idx)
}

func materialFromIndex(idx nodeIndex) MaterialId {
	return MaterialId(idx)
}

// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

// Region classifies a node index by which part of the backing array it
// falls in.
type Region int

const (
	// RegionMaterial means the index is a material sentinel, not an
	// allocated node at all.
	RegionMaterial Region = iota
	// RegionBaked means the index names a canonical, shared node
	// produced by Bake.
	RegionBaked
	// RegionEdit means the index names an unshared node that may still
	// be mutated in place.
	RegionEdit
)

func (r Region) String() string {
	switch r {
	case RegionMaterial:
		return "material"
	case RegionBaked:
		return "baked"
	case RegionEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Internals exposes read-only introspection into a Volume's backing
// store, for diagnostics and tests. It is not part of the stable
// contract the way Volume's edit and query methods are: field layout and
// region boundaries are free to change between releases.
type Internals struct {
	v *Volume
}

// Internals returns an introspection handle for v.
func (v *Volume) Internals() Internals {
	return Internals{v: v}
}

// NodeRegion classifies index as material, baked, or edit.
func (in Internals) NodeRegion(index nodeIndex) Region {
	switch {
	case isMaterialIndex(index):
		return RegionMaterial
	case in.v.dag.IsBakedNode(index):
		return RegionBaked
	default:
		return RegionEdit
	}
}

// Children returns the eight raw child indices of a non-material node.
// It panics if index is a material sentinel, since those have no
// backing node to inspect.
func (in Internals) Children(index nodeIndex) [8]nodeIndex {
	if isMaterialIndex(index) {
		panic("voxeldag: Children called on a material sentinel")
	}
	node := in.v.dag.Node(index)
	return [8]nodeIndex(node)
}

// BakedRange returns the half-open [begin, end) range of the backing
// array currently holding canonical, shared nodes.
func (in Internals) BakedRange() (begin, end uint32) {
	return in.v.dag.BakedNodesBegin(), in.v.dag.BakedNodesEnd()
}

// EditRange returns the half-open [begin, end) range of the backing
// array currently available to unshared edits.
func (in Internals) EditRange() (begin, end uint32) {
	return in.v.dag.EditNodesBegin(), in.v.dag.EditNodesEnd()
}

// RootHistory returns the full linear undo/redo history and the index of
// the live entry within it.
func (in Internals) RootHistory() (history []nodeIndex, current int) {
	history = make([]nodeIndex, len(in.v.rootNodeIndices))
	copy(history, in.v.rootNodeIndices)
	return history, in.v.currentRoot
}

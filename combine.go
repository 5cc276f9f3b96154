// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

import "github.com/cubiquity/voxeldag/internal/nodestore"

// AddVolume overlays rhs onto v: wherever rhs is material 0 ("empty"), v's
// existing voxel shows through; everywhere else rhs's material or subtree
// replaces v's. rhs is only read, never mutated, and its own history is
// unaffected. AddVolume can return ErrOutOfSpace if the combined structure
// needs more unshared nodes than v has room for; Bake one or both volumes
// first to reclaim space.
func (v *Volume) AddVolume(rhs *Volume) error {
	root := v.RootNodeIndex()
	newRoot, err := v.combine(root, rhs, rhs.RootNodeIndex(), rootHeight)
	if err != nil {
		return err
	}
	if newRoot == root {
		return nil
	}
	v.setRootNodeIndex(newRoot)
	return nil
}

// combine walks v's and rhs's trees together, routing every octant where
// the two disagree through UpdateNodeChild on lhsIndex — the same single
// decision point setVoxel and fillBrush use — so trackEdits governs
// whether combine mutates v's edit nodes in place or copies them, exactly
// as it does for any other structural edit.
func (v *Volume) combine(lhsIndex nodeIndex, rhs *Volume, rhsIndex nodeIndex, height int) (nodeIndex, error) {
	if isMaterialIndex(rhsIndex) {
		if materialFromIndex(rhsIndex) == EmptyMaterial {
			return lhsIndex, nil
		}
		return rhsIndex, nil
	}
	// Node indices only name the same subtree within one DAG.
	if rhs == v && lhsIndex == rhsIndex {
		return lhsIndex, nil
	}

	rhsChildren := childrenOf(rhs.dag, rhsIndex)

	index := lhsIndex
	for cid := uint32(0); cid < nodestore.ChildCount; cid++ {
		var childIndex nodeIndex
		if isMaterialIndex(index) {
			childIndex = index
		} else {
			childIndex = v.dag.Node(index)[cid]
		}

		newChild, err := v.combine(childIndex, rhs, rhsChildren[cid], height-1)
		if err != nil {
			return 0, err
		}
		if newChild == childIndex {
			continue
		}
		updated, err := v.dag.UpdateNodeChild(index, cid, newChild, v.trackEdits)
		if err != nil {
			return 0, translateNodestoreErr(err)
		}
		index = updated
	}
	return index, nil
}

// childrenOf returns a node's eight children, broadcasting a material
// sentinel to all eight slots so combine can treat leaves and internal
// nodes uniformly.
func childrenOf(dag *nodestore.NodeDAG, index nodeIndex) [nodestore.ChildCount]nodeIndex {
	if isMaterialIndex(index) {
		var arr [nodestore.ChildCount]nodeIndex
		for i := range arr {
			arr[i] = index
		}
		return arr
	}
	node := dag.Node(index)
	var arr [nodestore.ChildCount]nodeIndex
	for i := 0; i < nodestore.ChildCount; i++ {
		arr[i] = node[i]
	}
	return arr
}

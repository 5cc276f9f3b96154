// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

import (
	"github.com/cubiquity/voxeldag/internal/nodestore"
	"github.com/sirupsen/logrus"
)

// defaultEditHeadroom is the extra capacity reserved above MaterialCount
// for a freshly constructed Volume's edit region, beyond whatever the
// baked region needs. It is a starting point only; Reserve can grow it.
const defaultEditHeadroom = 1 << 16

// Volume owns one NodeDAG and a linear root-index history. Point edits,
// brush fills and volume combination all funnel through setRootNodeIndex,
// which either appends to the history (trackEdits) or overwrites the
// current entry in place.
type Volume struct {
	dag *nodestore.NodeDAG

	rootNodeIndices []nodeIndex
	currentRoot     int
	trackEdits      bool
}

// VolumeOption configures a Volume at construction time.
type VolumeOption func(*volumeConfig)

type volumeConfig struct {
	capacity uint32
}

// WithCapacity sets the total backing-array capacity reserved up front.
// Larger volumes with many simultaneous edits may need more than the
// default headroom above MaterialCount to avoid ErrOutOfSpace.
func WithCapacity(capacity uint32) VolumeOption {
	return func(c *volumeConfig) {
		c.capacity = capacity
	}
}

// NewVolume creates an empty Volume: every voxel is material 0, with one
// history entry and trackEdits off.
func NewVolume(opts ...VolumeOption) *Volume {
	cfg := volumeConfig{capacity: nodestore.MaterialCount + defaultEditHeadroom}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Volume{
		dag:             nodestore.New(cfg.capacity),
		rootNodeIndices: []nodeIndex{materialNodeIndex(EmptyMaterial)},
		currentRoot:     0,
	}
}

// Open constructs a Volume by loading filename; it returns an error if the
// file cannot be read (spec §7, I/O not-found is user-recoverable).
func Open(filename string, opts ...VolumeOption) (*Volume, error) {
	v := NewVolume(opts...)
	if err := v.Load(filename); err != nil {
		return nil, err
	}
	return v, nil
}

// RootNodeIndex returns the node index of the volume's live root.
func (v *Volume) RootNodeIndex() nodeIndex {
	return v.rootNodeIndices[v.currentRoot]
}

// setRootNodeIndex records a new root. With trackEdits on, history is
// truncated past the current position and the new root is appended,
// preserving prior roots for Undo; otherwise the current entry is
// overwritten in place. newIndex must differ from the current root — a
// setRootNodeIndex call with no actual change is a contract violation
// (spec §4.7): callers are expected to have already short-circuited.
func (v *Volume) setRootNodeIndex(newIndex nodeIndex) {
	if v.trackEdits {
		if newIndex == v.rootNodeIndices[v.currentRoot] {
			panic("voxeldag: setRootNodeIndex called with no change while tracking edits")
		}
		v.currentRoot++
		v.rootNodeIndices = append(v.rootNodeIndices[:v.currentRoot], newIndex)
		return
	}
	v.rootNodeIndices[v.currentRoot] = newIndex
}

// Fill sets every voxel in the volume to matId in O(1) by pointing the root
// directly at the material sentinel.
func (v *Volume) Fill(matId MaterialId) {
	if materialNodeIndex(matId) == v.RootNodeIndex() {
		return
	}
	v.setRootNodeIndex(materialNodeIndex(matId))
}

// SetTrackEdits toggles whether structural edits allocate fresh nodes
// (preserving prior roots for Undo) or mutate edit nodes in place.
// Turning tracking off collapses the history to just the live root.
func (v *Volume) SetTrackEdits(trackEdits bool) {
	v.trackEdits = trackEdits
	if !trackEdits {
		v.rootNodeIndices = []nodeIndex{v.rootNodeIndices[v.currentRoot]}
		v.currentRoot = 0
	}
}

// TrackEdits reports whether structural edits currently allocate fresh
// nodes instead of mutating in place.
func (v *Volume) TrackEdits() bool {
	return v.trackEdits
}

// Undo moves the live root back one step in history, returning false if
// there is nothing to undo.
func (v *Volume) Undo() bool {
	if v.currentRoot > 0 {
		v.currentRoot--
		return true
	}
	return false
}

// Redo moves the live root forward one step in history, returning false if
// there is nothing to redo.
func (v *Volume) Redo() bool {
	if v.currentRoot < len(v.rootNodeIndices)-1 {
		v.currentRoot++
		return true
	}
	return false
}

// Bake canonicalizes the reachable edit region into the shared baked
// region via hash-consing, then points the root at the canonical result.
// The edit region is not reset: the slots of the edit nodes that existed
// before the bake are not reclaimed, and later inserts allocate below
// them. Bake is also called by Save before writing.
func (v *Volume) Bake() {
	root := v.RootNodeIndex()
	before := v.dag.CountNodes(root)

	v.dag.Merge(root)

	// A material root has no node to canonicalize; Merge just empties the
	// baked region and the root itself is already maximally shared.
	if !isMaterialIndex(root) {
		if newRoot := v.dag.BakedNodesBegin(); newRoot != root {
			v.setRootNodeIndex(newRoot)
		}
	}

	log.WithFields(logrus.Fields{
		"nodesBefore": before,
		"nodesAfter":  v.dag.BakedNodesEnd() - v.dag.BakedNodesBegin(),
	}).Debug("voxeldag: bake complete")
}

// CountNodes returns the number of distinct allocated node indices
// reachable from the live root.
func (v *Volume) CountNodes() uint32 {
	return v.dag.CountNodes(v.RootNodeIndex())
}

// Reserve grows the backing array so the edit region has at least extra
// slots of headroom, letting a caller avoid ErrOutOfSpace ahead of a
// large batch of edits instead of reacting to it after the fact.
func (v *Volume) Reserve(extra uint32) {
	oldBegin, oldEnd := v.dag.EditNodesBegin(), v.dag.EditNodesEnd()
	v.dag.Reserve(extra)
	// The edit region moved up by extra; move history roots that point into it.
	for i, idx := range v.rootNodeIndices {
		if idx >= oldBegin && idx < oldEnd {
			v.rootNodeIndices[i] = idx + extra
		}
	}
}

// voxelFrame is one level of the iterative descent stack used by SetVoxel.
type voxelFrame struct {
	index     nodeIndex
	processed bool
}

// SetVoxel sets the material at (x, y, z), allocating or mutating nodes
// along the descent path as needed. It returns ErrOutOfSpace if an edit
// node could not be allocated; the live root and every node reachable
// from it are then unchanged, and the copies already allocated below the
// failure point are left unreferenced.
//
// The descent is iterative, using a fixed 33-deep stack (one frame per
// height from the root down to the leaf) rather than recursion, since a
// fully degenerate octree can be 32 levels deep and this runs on every
// single-voxel edit. setVoxelRecursive below implements the same
// algorithm recursively and is kept only so tests can assert the two
// never disagree.
func (v *Volume) SetVoxel(x, y, z int32, matId MaterialId) error {
	ux, uy, uz := toUnsigned(x), toUnsigned(y), toUnsigned(z)
	newRoot, changed, err := v.setVoxelIterative(ux, uy, uz, materialNodeIndex(matId))
	if err != nil {
		return err
	}
	if changed {
		v.setRootNodeIndex(newRoot)
	}
	return nil
}

func (v *Volume) setVoxelIterative(ux, uy, uz uint32, mat nodeIndex) (newRoot nodeIndex, changed bool, err error) {
	var stack [rootHeight + 1]voxelFrame
	height := rootHeight
	stack[height] = voxelFrame{index: v.RootNodeIndex()}

	for {
		frame := &stack[height]
		cid := childId(ux, uy, uz, height)

		if !frame.processed {
			var child nodeIndex
			if isMaterialIndex(frame.index) {
				child = frame.index
			} else {
				child = v.dag.Node(frame.index)[cid]
			}
			if child == mat {
				return 0, false, nil
			}
			frame.processed = true
			if height >= 2 {
				stack[height-1] = voxelFrame{index: child}
				height--
			}
			continue
		}

		if height > 1 {
			childIndex := stack[height-1].index
			var current nodeIndex
			if isMaterialIndex(frame.index) {
				current = frame.index
			} else {
				current = v.dag.Node(frame.index)[cid]
			}
			if current != childIndex {
				updated, uerr := v.dag.UpdateNodeChild(frame.index, cid, childIndex, v.trackEdits)
				if uerr != nil {
					return 0, false, translateNodestoreErr(uerr)
				}
				frame.index = updated
			}
		} else {
			updated, uerr := v.dag.UpdateNodeChild(frame.index, cid, mat, v.trackEdits)
			if uerr != nil {
				return 0, false, translateNodestoreErr(uerr)
			}
			frame.index = updated
		}

		height++
		if height > rootHeight {
			break
		}
	}
	return stack[rootHeight].index, true, nil
}

// setVoxelRecursive is the recursive twin of setVoxelIterative, descending
// one stack frame per call instead of per loop iteration. It exists only
// to give tests an independent implementation to check the iterative form
// against; production code always calls SetVoxel.
func (v *Volume) setVoxelRecursive(ux, uy, uz uint32, mat nodeIndex, index nodeIndex, height int) (nodeIndex, error) {
	cid := childId(ux, uy, uz, height)

	var child nodeIndex
	if isMaterialIndex(index) {
		child = index
	} else {
		child = v.dag.Node(index)[cid]
	}
	if child == mat {
		return index, nil
	}

	if height > 1 {
		newChild, err := v.setVoxelRecursive(ux, uy, uz, mat, child, height-1)
		if err != nil {
			return 0, err
		}
		if newChild == child {
			return index, nil
		}
		updated, err := v.dag.UpdateNodeChild(index, cid, newChild, v.trackEdits)
		if err != nil {
			return 0, translateNodestoreErr(err)
		}
		return updated, nil
	}

	updated, err := v.dag.UpdateNodeChild(index, cid, mat, v.trackEdits)
	if err != nil {
		return 0, translateNodestoreErr(err)
	}
	return updated, nil
}

// setVoxelRecursiveEntry is the public entry point for setVoxelRecursive,
// mirroring SetVoxel's root-update bookkeeping.
func (v *Volume) setVoxelRecursiveEntry(x, y, z int32, matId MaterialId) error {
	ux, uy, uz := toUnsigned(x), toUnsigned(y), toUnsigned(z)
	root := v.RootNodeIndex()
	newRoot, err := v.setVoxelRecursive(ux, uy, uz, materialNodeIndex(matId), root, rootHeight)
	if err != nil {
		return err
	}
	if newRoot == root {
		return nil
	}
	v.setRootNodeIndex(newRoot)
	return nil
}

// Voxel returns the material at (x, y, z).
func (v *Volume) Voxel(x, y, z int32) MaterialId {
	ux, uy, uz := toUnsigned(x), toUnsigned(y), toUnsigned(z)

	index := v.RootNodeIndex()
	for height := rootHeight; height >= 1; height-- {
		if isMaterialIndex(index) {
			return materialFromIndex(index)
		}
		cid := childId(ux, uy, uz, height)
		index = v.dag.Node(index)[cid]
	}
	return materialFromIndex(index)
}

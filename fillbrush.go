// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

import "github.com/cubiquity/voxeldag/internal/nodestore"

// FillBrush sets every voxel contained by brush to matId. Descent prunes
// whole octants using brush.Bounds() before ever calling Contains, and a
// node whose eight corners all test inside the brush is filled in one
// step without visiting its children.
//
// The corner test is exact for convex brushes: if all eight corners of an
// axis-aligned box lie inside a convex shape, the whole box does too. For
// a non-convex brush (a Brush implementation shaped like a torus, say)
// eight contained corners don't guarantee a contained interior, so the
// fast path can over-fill such shapes right at their concavities. Callers
// with a non-convex brush that cannot tolerate this should shrink it to
// pieces small enough that the approximation stops mattering, or fill at
// the granularity where it does.
func (v *Volume) FillBrush(brush Brush, matId MaterialId) error {
	bounds := brush.Bounds()
	root := v.RootNodeIndex()
	newRoot, err := v.fillBrush(root, 0, 0, 0, rootHeight, brush, bounds, materialNodeIndex(matId))
	if err != nil {
		return err
	}
	if newRoot == root {
		return nil
	}
	v.setRootNodeIndex(newRoot)
	return nil
}

func (v *Volume) fillBrush(index nodeIndex, lx, ly, lz int64, height int, brush Brush, bounds Box3f, mat nodeIndex) (nodeIndex, error) {
	side := int64(1) << uint(height)
	box := nodeBox(lx, ly, lz, side)

	if !box.overlaps(bounds) {
		return index, nil
	}
	if cornersInside(box, brush) {
		if index == mat {
			return index, nil
		}
		return mat, nil
	}

	if height == 1 {
		return v.fillBrushLeaf(index, lx, ly, lz, brush, mat)
	}

	childSide := side / 2
	for cid := uint32(0); cid < nodestore.ChildCount; cid++ {
		cx, cy, cz := octant(cid)
		clx := lx + int64(cx)*childSide
		cly := ly + int64(cy)*childSide
		clz := lz + int64(cz)*childSide

		var childIndex nodeIndex
		if isMaterialIndex(index) {
			childIndex = index
		} else {
			childIndex = v.dag.Node(index)[cid]
		}

		newChild, err := v.fillBrush(childIndex, clx, cly, clz, height-1, brush, bounds, mat)
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

// fillBrushLeaf handles a height-1 node, whose eight children are voxels
// rather than further nodes, by sampling each voxel at its own integer
// coordinate — the same point-sample convention nodeBox/cornersInside use
// for every other height, where a node's box runs to lx+side-1, not
// lx+side.
func (v *Volume) fillBrushLeaf(index nodeIndex, lx, ly, lz int64, brush Brush, mat nodeIndex) (nodeIndex, error) {
	for cid := uint32(0); cid < nodestore.ChildCount; cid++ {
		cx, cy, cz := octant(cid)
		vx := unsignedToSigned(uint32(lx + int64(cx)))
		vy := unsignedToSigned(uint32(ly + int64(cy)))
		vz := unsignedToSigned(uint32(lz + int64(cz)))

		if !brush.Contains(Vec3f{X: float32(vx), Y: float32(vy), Z: float32(vz)}) {
			continue
		}

		var current nodeIndex
		if isMaterialIndex(index) {
			current = index
		} else {
			current = v.dag.Node(index)[cid]
		}
		if current == mat {
			continue
		}

		updated, err := v.dag.UpdateNodeChild(index, cid, mat, v.trackEdits)
		if err != nil {
			return 0, translateNodestoreErr(err)
		}
		index = updated
	}
	return index, nil
}

// nodeBox converts a node's unsigned descent-space origin and side length
// into the signed-coordinate box it covers.
func nodeBox(lx, ly, lz, side int64) Box3f {
	minX := unsignedToSigned(uint32(lx))
	minY := unsignedToSigned(uint32(ly))
	minZ := unsignedToSigned(uint32(lz))
	maxX := unsignedToSigned(uint32(lx + side - 1))
	maxY := unsignedToSigned(uint32(ly + side - 1))
	maxZ := unsignedToSigned(uint32(lz + side - 1))
	return Box3f{
		Min: Vec3f{X: float32(minX), Y: float32(minY), Z: float32(minZ)},
		Max: Vec3f{X: float32(maxX), Y: float32(maxY), Z: float32(maxZ)},
	}
}

// cornersInside reports whether all eight corners of box test inside brush.
func cornersInside(box Box3f, brush Brush) bool {
	xs := [2]float32{box.Min.X, box.Max.X}
	ys := [2]float32{box.Min.Y, box.Max.Y}
	zs := [2]float32{box.Min.Z, box.Max.Z}
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				if !brush.Contains(Vec3f{X: x, Y: y, Z: z}) {
					return false
				}
			}
		}
	}
	return true
}

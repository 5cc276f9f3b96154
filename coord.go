// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

// rootHeight is log2(VolumeSideLength): the volume spans 2^32 voxels per
// axis, so the root node covers a cube of side 2^32 and descending from it
// to a single voxel takes 32 steps.
const rootHeight = 32

// signBit maps the signed 32-bit coordinate range onto [0, 2^32) bijectively
// and monotonically: XOR-ing with the sign bit turns two's-complement
// ordering into unsigned ordering.
const signBit = uint32(1) << 31

// toUnsigned converts a signed axis coordinate to the unsigned space used
// by all octree descent.
func toUnsigned(v int32) uint32 {
	return uint32(v) ^ signBit
}

// childId returns the octant index for a node at the given height (the
// number of levels remaining above the voxel, i.e. the root starts at
// rootHeight) given the unsigned coordinates. Bit (height-1) of each axis
// selects the octant; the concatenation z<<2|y<<1|x yields childId in
// [0,8).
func childId(ux, uy, uz uint32, height int) uint32 {
	shift := uint(height - 1)
	cx := (ux >> shift) & 1
	cy := (uy >> shift) & 1
	cz := (uz >> shift) & 1
	return cz<<2 | cy<<1 | cx
}

// octant decomposes a childId back into its three per-axis bits, the
// inverse of childId's z<<2|y<<1|x packing.
func octant(cid uint32) (cx, cy, cz uint32) {
	return cid & 1, (cid >> 1) & 1, (cid >> 2) & 1
}

// unsignedToSigned converts an unsigned descent-space coordinate back to
// the signed voxel coordinate it originated from.
func unsignedToSigned(u uint32) int32 {
	return int32(u ^ signBit)
}

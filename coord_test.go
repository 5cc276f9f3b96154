// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

import "testing"

func TestToUnsignedPreservesOrder(t *testing.T) {
	t.Parallel()

	if toUnsigned(-2147483648) != 0 {
		t.Fatalf("toUnsigned(minI32) = %d, want 0", toUnsigned(-2147483648))
	}
	if toUnsigned(2147483647) != 0xFFFFFFFF {
		t.Fatalf("toUnsigned(maxI32) = %d, want 0xFFFFFFFF", toUnsigned(2147483647))
	}
	if toUnsigned(0) != 1<<31 {
		t.Fatalf("toUnsigned(0) = %d, want %d", toUnsigned(0), uint32(1)<<31)
	}
}

func TestUnsignedToSignedIsInverse(t *testing.T) {
	t.Parallel()

	for _, v := range []int32{-2147483648, -1, 0, 1, 2147483647} {
		if got := unsignedToSigned(toUnsigned(v)); got != v {
			t.Fatalf("unsignedToSigned(toUnsigned(%d)) = %d", v, got)
		}
	}
}

func TestChildIdPacksAxesZYX(t *testing.T) {
	t.Parallel()

	// At height 1, bit 0 of each axis selects the octant.
	cases := []struct {
		ux, uy, uz uint32
		want       uint32
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 1},
		{0, 1, 0, 2},
		{0, 0, 1, 4},
		{1, 1, 1, 7},
	}
	for _, c := range cases {
		if got := childId(c.ux, c.uy, c.uz, 1); got != c.want {
			t.Fatalf("childId(%d,%d,%d,1) = %d, want %d", c.ux, c.uy, c.uz, got, c.want)
		}
	}
}

func TestOctantInvertsChildId(t *testing.T) {
	t.Parallel()

	for cid := uint32(0); cid < 8; cid++ {
		cx, cy, cz := octant(cid)
		if got := childId(cx, cy, cz, 1); got != cid {
			t.Fatalf("octant(%d) -> childId = %d, want %d", cid, got, cid)
		}
	}
}

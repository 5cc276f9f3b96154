// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package nodestore

import "testing"

func TestMergeOnMaterialRootEmptiesBakedRegion(t *testing.T) {
	t.Parallel()

	d := New(1024)
	d.Merge(7)
	if d.BakedNodesEnd() != d.BakedNodesBegin() {
		t.Fatalf("Merge(material) left a non-empty baked region: end=%d", d.BakedNodesEnd())
	}
}

func TestMergeDeduplicatesIdenticalSubtrees(t *testing.T) {
	t.Parallel()

	d := New(MaterialCount + 1024)

	// Two structurally identical leaves, inserted at different indices.
	leafA, _ := d.Insert(Node{1, 1, 1, 1, 1, 1, 1, 1})
	leafB, _ := d.Insert(Node{1, 1, 1, 1, 1, 1, 1, 1})
	root, _ := d.Insert(Node{leafA, leafB, 2, 2, 2, 2, 2, 2})

	before := d.CountNodes(root)
	if before != 3 {
		t.Fatalf("pre-merge CountNodes = %d, want 3 (two distinct edit indices for the same shape)", before)
	}

	d.Merge(root)
	bakedRoot := d.BakedNodesBegin()

	after := d.CountNodes(bakedRoot)
	if after != 2 {
		t.Fatalf("post-merge CountNodes = %d, want 2 (root + one shared leaf)", after)
	}

	merged := d.Node(bakedRoot)
	if merged[0] != merged[1] {
		t.Fatalf("merged root children 0 and 1 should share one baked leaf, got %v", merged)
	}
}

func TestMergePreservesVoxelValues(t *testing.T) {
	t.Parallel()

	d := New(MaterialCount + 1024)
	leaf, _ := d.Insert(Node{3, 3, 3, 3, 3, 3, 3, 9})
	root, _ := d.Insert(Node{leaf, 4, 4, 4, 4, 4, 4, 4})

	d.Merge(root)
	bakedRoot := d.BakedNodesBegin()

	got := d.Node(bakedRoot)
	if got[1] != 4 {
		t.Fatalf("baked root slot 1 = %d, want material 4", got[1])
	}
	if IsMaterialNode(got[0]) {
		t.Fatalf("baked root slot 0 should be an allocated node, got material %d", got[0])
	}
	leafNode := d.Node(got[0])
	if leafNode[7] != 9 {
		t.Fatalf("baked leaf slot 7 = %d, want 9", leafNode[7])
	}
}

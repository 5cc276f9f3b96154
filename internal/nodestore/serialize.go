// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package nodestore

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// WriteTo writes the baked region to w: a little-endian u32 node count
// followed by that many 8xu32 nodes in baked order. The edit region is not
// written; callers merge before saving (spec.md §6).
func (d *NodeDAG) WriteTo(w io.Writer) (int64, error) {
	count := d.bakedNodesEnd - d.BakedNodesBegin()

	buf := make([]byte, 4+int(count)*ChildCount*4)
	binary.LittleEndian.PutUint32(buf[0:4], count)

	off := 4
	for i := uint32(0); i < count; i++ {
		node := d.nodes.At(d.BakedNodesBegin() + i)
		for _, child := range node {
			binary.LittleEndian.PutUint32(buf[off:off+4], child)
			off += 4
		}
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), errors.Wrap(err, "nodestore: write baked nodes")
	}
	return int64(n), nil
}

// ReadFrom replaces the baked region by reading a node count followed by
// that many nodes from r, placing them at BakedNodesBegin()+k. The edit
// region is assumed empty; this is only valid right after New or on a
// freshly reset NodeDAG.
func (d *NodeDAG) ReadFrom(r io.Reader) (int64, error) {
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return 0, errors.Wrap(err, "nodestore: read node count")
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	needed := d.BakedNodesBegin() + count
	if needed > d.editNodesBegin {
		d.Reserve(needed - d.editNodesBegin)
	}

	body := make([]byte, int(count)*ChildCount*4)
	n, err := io.ReadFull(r, body)
	if err != nil {
		return int64(4 + n), errors.Wrap(err, "nodestore: read baked nodes")
	}

	off := 0
	for i := uint32(0); i < count; i++ {
		var node Node
		for c := range node {
			node[c] = binary.LittleEndian.Uint32(body[off : off+4])
			off += 4
		}
		d.nodes.SetNode(d.BakedNodesBegin()+i, node)
	}
	d.bakedNodesEnd = d.BakedNodesBegin() + count

	return int64(4 + len(body)), nil
}

// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Save bakes the volume and writes it to filename: a little-endian u32
// root index, then the baked node array in internal/nodestore's format.
// The root index is stored explicitly rather than assumed to be the
// start of the baked array, since a uniformly filled volume bakes to a
// bare material sentinel with no nodes at all. History and trackEdits
// state are not preserved; a freshly loaded volume always starts with a
// single history entry and tracking off.
func (v *Volume) Save(filename string) error {
	v.Bake()

	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "voxeldag: create file")
	}
	defer f.Close()

	var rootBuf [4]byte
	binary.LittleEndian.PutUint32(rootBuf[:], v.RootNodeIndex())
	if _, err := f.Write(rootBuf[:]); err != nil {
		return errors.Wrap(err, "voxeldag: write root index")
	}

	n, err := v.dag.WriteTo(f)
	if err != nil {
		return errors.Wrap(err, "voxeldag: write volume")
	}

	log.WithFields(logrus.Fields{
		"file":  filename,
		"bytes": 4 + n,
	}).Debug("voxeldag: volume saved")
	return nil
}

// Load replaces v's contents with the volume stored in filename. History
// is reset to a single entry and trackEdits is turned off, matching a
// freshly constructed Volume. If filename does not exist, ErrFileNotFound
// is returned; any other failure to open it returns a wrapped error. In
// both cases v is left unchanged.
func (v *Volume) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithFields(logrus.Fields{"file": filename}).Warn("voxeldag: load failed, file not found")
			return ErrFileNotFound
		}
		log.WithFields(logrus.Fields{"file": filename, "error": err}).Warn("voxeldag: load failed to open file")
		return errors.Wrap(err, "voxeldag: open file")
	}
	defer f.Close()

	var rootBuf [4]byte
	if _, err := io.ReadFull(f, rootBuf[:]); err != nil {
		log.WithFields(logrus.Fields{"file": filename, "error": err}).Warn("voxeldag: load failed to read root index")
		return errors.Wrap(err, "voxeldag: read root index")
	}
	root := binary.LittleEndian.Uint32(rootBuf[:])

	n, err := v.dag.ReadFrom(f)
	if err != nil {
		log.WithFields(logrus.Fields{"file": filename, "error": err}).Warn("voxeldag: load failed to read volume")
		return errors.Wrap(err, "voxeldag: read volume")
	}

	v.rootNodeIndices = []nodeIndex{root}
	v.currentRoot = 0
	v.trackEdits = false

	log.WithFields(logrus.Fields{
		"file":  filename,
		"bytes": 4 + n,
	}).Debug("voxeldag: volume loaded")
	return nil
}

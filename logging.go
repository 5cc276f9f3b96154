// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

import "github.com/sirupsen/logrus"

// log is the package-level structured logger, defaulting to logrus's
// standard logger. Bake and Load fire Debug/Warn entries summarizing
// whole-volume operations; the hot per-voxel descent never logs.
var log = logrus.StandardLogger()

// SetLogger replaces the package-level logger, letting an embedding
// application redirect voxeldag's diagnostics into its own log pipeline.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		return
	}
	log = l
}

// Copyright (c) 2025 voxeldag authors
// SPDX-License-Identifier: MIT

package voxeldag

// Vec3f is a point in float32 space, used only for brush geometry tests.
type Vec3f struct {
	X, Y, Z float32
}

// Box3f is an axis-aligned bounding box, inclusive on both corners.
type Box3f struct {
	Min, Max Vec3f
}

// overlaps reports whether two axis-aligned boxes share any volume.
func (b Box3f) overlaps(o Box3f) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Brush is the capability FillBrush requires of a fill shape: a point
// containment predicate and a bounding box used to prune octants that
// cannot possibly be affected. Implementers supply geometric primitives
// (Sphere, Box, or anything else) conforming to this interface; no brush
// reference is retained beyond a single FillBrush call.
type Brush interface {
	Contains(p Vec3f) bool
	Bounds() Box3f
}

// Sphere is a Brush implementation for a solid ball.
type Sphere struct {
	Center Vec3f
	Radius float32
}

// Contains implements Brush.
func (s Sphere) Contains(p Vec3f) bool {
	dx := p.X - s.Center.X
	dy := p.Y - s.Center.Y
	dz := p.Z - s.Center.Z
	return dx*dx+dy*dy+dz*dz <= s.Radius*s.Radius
}

// Bounds implements Brush.
func (s Sphere) Bounds() Box3f {
	r := Vec3f{s.Radius, s.Radius, s.Radius}
	return Box3f{
		Min: Vec3f{s.Center.X - r.X, s.Center.Y - r.Y, s.Center.Z - r.Z},
		Max: Vec3f{s.Center.X + r.X, s.Center.Y + r.Y, s.Center.Z + r.Z},
	}
}

// Box is a Brush implementation for a solid axis-aligned cuboid.
type Box struct {
	Box3f
}

// Contains implements Brush.
func (b Box) Contains(p Vec3f) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Bounds implements Brush.
func (b Box) Bounds() Box3f {
	return b.Box3f
}

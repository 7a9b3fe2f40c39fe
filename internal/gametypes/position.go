// Package gametypes holds the domain value types carried on the wire:
// world positions, ground tiles, stats, effects, object status, and the
// small trade/inventory record types.
package gametypes

import "math"

// WorldPosition is a floating-point map coordinate.
type WorldPosition struct {
	X float32
	Y float32
}

// SqDistanceTo returns the squared Euclidean distance to target, avoiding a
// sqrt call where only ordering matters.
func (p WorldPosition) SqDistanceTo(target WorldPosition) float32 {
	dx := target.X - p.X
	dy := target.Y - p.Y
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance to target.
func (p WorldPosition) DistanceTo(target WorldPosition) float32 {
	return float32(math.Sqrt(float64(p.SqDistanceTo(target))))
}

// AngleTo returns the bearing from p to target in radians.
func (p WorldPosition) AngleTo(target WorldPosition) float32 {
	return float32(math.Atan2(float64(target.Y-p.Y), float64(target.X-p.X)))
}

// OutOfBounds reports whether p lies outside a square map of the given
// width. This intentionally mirrors the original client's check, which
// compares both axes against width rather than against a separate height —
// a known discrepancy in the source this client is modeled on, preserved
// here for wire-compatible behavior rather than corrected.
func (p WorldPosition) OutOfBounds(width float32) bool {
	return p.X < 0 || p.Y < 0 || p.X > width || p.Y > width
}

// GroundTile is a single floor tile as reported by a Update/MapInfo packet.
// Equality (for map de-duplication) is by coordinate only, ignoring the
// tile type, matching the original client's tile cache semantics.
type GroundTile struct {
	X, Y     int16
	TileType uint16
}

// SameTileAs reports whether two tiles occupy the same coordinate.
func (t GroundTile) SameTileAs(other GroundTile) bool {
	return t.X == other.X && t.Y == other.Y
}

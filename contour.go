// lipski.dev/go/isocontour - polygonal union contour of axis-aligned rectangles
// Copyright (C) 2026  The isocontour Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package isocontour computes the polygonal union contour of a finite
// collection of axis-aligned rectangles: the set of simple, mutually
// non-intersecting iso-oriented cycles whose union of interiors equals
// the union of the input rectangles' interiors.
//
// The implementation follows Lipski & Preparata (1979), "Finding the
// Contour of a Union of Iso-Oriented Rectangles": a plane sweep over
// vertical rectangle edges drives a dynamic segment tree that tracks
// the one-dimensional union of active y-intervals, and a stitching
// pass assembles the tree's emitted vertical edges, plus the
// horizontal connectors implicit in their pairing, into ordered
// cycles.
package isocontour

import (
	"cmp"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	georect "seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a coordinate pair. It is an alias for the vector type used
// throughout the seehuhn.de/go/geom ecosystem, so contours compose
// directly with code built on that package.
type Point = vec.Vec2

// Cycle is a closed polygonal curve: a non-empty, even-length sequence
// of points whose implicit closing edge connects the last vertex back
// to the first. Edges alternate strictly between horizontal and
// vertical. Outer boundaries are listed counter-clockwise; holes are
// clockwise.
type Cycle struct {
	Vertices []Point
}

// Normalize rotates the vertex sequence in place so that the
// lexicographically smallest (x, y) vertex comes first. It does not
// change the winding direction.
func (c *Cycle) Normalize() {
	if len(c.Vertices) == 0 {
		return
	}
	minIdx := 0
	for i, v := range c.Vertices {
		if pointLess(v, c.Vertices[minIdx]) {
			minIdx = i
		}
	}
	if minIdx == 0 {
		return
	}
	rotated := make([]Point, len(c.Vertices))
	for i := range rotated {
		rotated[i] = c.Vertices[(minIdx+i)%len(c.Vertices)]
	}
	c.Vertices = rotated
}

// Normalized returns a copy of c with Normalize applied.
func (c Cycle) Normalized() Cycle {
	out := Cycle{Vertices: slices.Clone(c.Vertices)}
	out.Normalize()
	return out
}

// Applying returns a copy of c with the affine transform m applied to
// every vertex.
func (c Cycle) Applying(m matrix.Matrix) Cycle {
	out := Cycle{Vertices: make([]Point, len(c.Vertices))}
	for i, v := range c.Vertices {
		out.Vertices[i] = applyMatrix(m, v)
	}
	return out
}

// Area returns the signed area enclosed by the cycle (positive for a
// counter-clockwise boundary, negative for a clockwise hole), via the
// shoelace formula.
func (c Cycle) Area() float64 {
	n := len(c.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := c.Vertices[i]
		b := c.Vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Path builds a seehuhn.de/go/geom/path.Data tracing the cycle, for
// handing off to code that consumes the geom ecosystem's path type
// (rendering, further geometric processing, and so on all live
// outside this package).
func (c Cycle) Path() *path.Data {
	p := &path.Data{}
	if len(c.Vertices) == 0 {
		return p
	}
	p = p.MoveTo(c.Vertices[0])
	for _, v := range c.Vertices[1:] {
		p = p.LineTo(v)
	}
	return p.Close()
}

// Contour is a set of cycles. Disjoint cycles have disjoint interiors;
// cycles may be nested arbitrarily deep, alternating fill and hole
// with depth.
type Contour struct {
	Cycles []Cycle
}

// Normalize normalizes each cycle and then sorts the cycles
// lexicographically by their vertex sequence, breaking ties by
// length.
func (c *Contour) Normalize() {
	for i := range c.Cycles {
		c.Cycles[i].Normalize()
	}
	slices.SortFunc(c.Cycles, compareCycles)
}

// Normalized returns a copy of c with Normalize applied.
func (c Contour) Normalized() Contour {
	out := Contour{Cycles: make([]Cycle, len(c.Cycles))}
	for i, cyc := range c.Cycles {
		out.Cycles[i] = cyc.Normalized()
	}
	slices.SortFunc(out.Cycles, compareCycles)
	return out
}

// Applying returns a copy of c with the affine transform m applied to
// every cycle.
func (c Contour) Applying(m matrix.Matrix) Contour {
	out := Contour{Cycles: make([]Cycle, len(c.Cycles))}
	for i, cyc := range c.Cycles {
		out.Cycles[i] = cyc.Applying(m)
	}
	return out
}

// Area returns the total area of the region the contour bounds: the
// sum of the signed areas of its cycles (positive for outer
// boundaries, negative for holes).
func (c Contour) Area() float64 {
	var total float64
	for _, cyc := range c.Cycles {
		total += cyc.Area()
	}
	return total
}

// Path builds a single seehuhn.de/go/geom/path.Data containing one
// closed subpath per cycle.
func (c Contour) Path() *path.Data {
	p := &path.Data{}
	for _, cyc := range c.Cycles {
		if len(cyc.Vertices) == 0 {
			continue
		}
		p = p.MoveTo(cyc.Vertices[0])
		for _, v := range cyc.Vertices[1:] {
			p = p.LineTo(v)
		}
		p = p.Close()
	}
	return p
}

// BoundingBox returns the bounding box of all of c's vertices, in the
// seehuhn.de/go/geom/rect vocabulary. It panics if c has no cycles.
func (c Contour) BoundingBox() georect.Rect {
	first := true
	var bb georect.Rect
	for _, cyc := range c.Cycles {
		for _, v := range cyc.Vertices {
			if first {
				bb = georect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
				first = false
				continue
			}
			bb.LLx = min(bb.LLx, v.X)
			bb.LLy = min(bb.LLy, v.Y)
			bb.URx = max(bb.URx, v.X)
			bb.URy = max(bb.URy, v.Y)
		}
	}
	if first {
		panic("isocontour: BoundingBox of an empty contour")
	}
	return bb
}

// Union computes the polygonal union contour of rects (§1, §6). Empty
// rectangles (zero width or zero height) are ignored. An empty or
// all-empty input yields a Contour with no cycles.
func Union(rects []Rect) Contour {
	scale, kept := buildYScale(rects)
	if scale.n() == 0 {
		return Contour{}
	}
	events := buildEvents(kept, scale)
	edges := sweep(events, scale)
	return Contour{Cycles: stitch(edges)}
}

func pointLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func compareCycles(a, b Cycle) int {
	n := min(len(a.Vertices), len(b.Vertices))
	for i := 0; i < n; i++ {
		if c := comparePoints(a.Vertices[i], b.Vertices[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Vertices), len(b.Vertices))
}

func comparePoints(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// applyMatrix applies the affine transform m to v, using the standard
// [a b c d e f] convention: x' = a*x + c*y + e, y' = b*x + d*y + f.
func applyMatrix(m matrix.Matrix, v Point) Point {
	return Point{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

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

package isocontour

import (
	"slices"

	georect "seehuhn.de/go/geom/rect"
)

// Rect is an axis-aligned rectangle given by its low and high corners.
// It is empty if either extent is zero.
type Rect struct {
	XLo, YLo, XHi, YHi float64
}

// Empty reports whether r has zero width or zero height.
func (r Rect) Empty() bool {
	return r.XLo == r.XHi || r.YLo == r.YHi
}

// ToGeomRect converts r to a seehuhn.de/go/geom/rect.Rect, for callers
// that already work in terms of that package's bounding-box type.
func (r Rect) ToGeomRect() georect.Rect {
	return georect.Rect{LLx: r.XLo, LLy: r.YLo, URx: r.XHi, URy: r.YHi}
}

// yScale is the coordinate compression of §4.1: the sorted, distinct
// y-values of the non-empty input rectangles, with an index lookup.
type yScale struct {
	ys      []float64
	indexOf map[float64]int
}

// buildYScale collects the distinct y-coordinates of the non-empty
// rectangles in rects and assigns each a dense index. It returns the
// scale together with the filtered list of non-empty rectangles, in
// the same order as rects.
func buildYScale(rects []Rect) (yScale, []Rect) {
	kept := make([]Rect, 0, len(rects))
	seen := make(map[float64]bool)
	ys := make([]float64, 0, 2*len(rects))
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		kept = append(kept, r)
		if !seen[r.YLo] {
			seen[r.YLo] = true
			ys = append(ys, r.YLo)
		}
		if !seen[r.YHi] {
			seen[r.YHi] = true
			ys = append(ys, r.YHi)
		}
	}
	slices.Sort(ys)

	indexOf := make(map[float64]int, len(ys))
	for i, y := range ys {
		indexOf[y] = i
	}
	return yScale{ys: ys, indexOf: indexOf}, kept
}

// n is the number of unit leaf-segments, |ys|-1.
func (s yScale) n() int {
	if len(s.ys) < 2 {
		return 0
	}
	return len(s.ys) - 1
}

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

import "seehuhn.de/go/geom/vec"

// contourEdge is a vertical edge of the output contour, not yet
// stitched into a cycle.
type contourEdge struct {
	x        float64
	yLo, yHi float64
	crossing crossingType
}

// start and end are the two endpoints of the edge in sweep-emission
// order (§4.4): an Entering edge is traversed upward (start at yHi,
// end at yLo); an Exiting edge is traversed downward.
func (e contourEdge) start() vec.Vec2 {
	if e.crossing == entering {
		return vec.Vec2{X: e.x, Y: e.yHi}
	}
	return vec.Vec2{X: e.x, Y: e.yLo}
}

func (e contourEdge) end() vec.Vec2 {
	if e.crossing == entering {
		return vec.Vec2{X: e.x, Y: e.yLo}
	}
	return vec.Vec2{X: e.x, Y: e.yHi}
}

// sweep drives the segment tree across the sorted events, coalescing
// the spans it emits at each event into vertical contour edges (§4.4).
func sweep(events []event, scale yScale) []contourEdge {
	tree := newSegmentTree(scale.n())

	var edges []contourEdge
	var endpoints []int
	emit := func(s span) {
		if len(endpoints) > 0 && endpoints[len(endpoints)-1] == s.lo {
			endpoints = endpoints[:len(endpoints)-1]
		} else {
			endpoints = append(endpoints, s.lo)
		}
		endpoints = append(endpoints, s.hi)
	}

	for _, ev := range events {
		endpoints = endpoints[:0]
		sp := span{lo: ev.yLo, hi: ev.yHi}
		switch ev.crossing {
		case entering:
			tree.insert(sp, emit)
		case exiting:
			tree.remove(sp, emit)
		}

		if len(endpoints)%2 != 0 {
			panic("isocontour: segment tree reported an odd number of boundary endpoints")
		}
		for k := 0; k < len(endpoints); k += 2 {
			lo, hi := endpoints[k], endpoints[k+1]
			edges = append(edges, contourEdge{
				x:        ev.x,
				yLo:      scale.ys[lo],
				yHi:      scale.ys[hi],
				crossing: ev.crossing,
			})
		}
	}
	return edges
}

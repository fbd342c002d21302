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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// contourVertex is one of the two endpoints of a contourEdge, tagged
// with the edge it belongs to and whether it is that edge's end.
type contourVertex struct {
	pt      vec.Vec2
	edgeIdx int
	isEnd   bool
}

// stitch pairs up the endpoints of edges by horizontal line (§4.5) and
// walks the resulting link graph to emit closed cycles.
func stitch(edges []contourEdge) []Cycle {
	if len(edges) == 0 {
		return nil
	}

	verts := make([]contourVertex, 0, 2*len(edges))
	for i, e := range edges {
		verts = append(verts, contourVertex{pt: e.start(), edgeIdx: i, isEnd: false})
		verts = append(verts, contourVertex{pt: e.end(), edgeIdx: i, isEnd: true})
	}
	slices.SortFunc(verts, func(a, b contourVertex) int {
		if c := cmp.Compare(a.pt.Y, b.pt.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.pt.X, b.pt.X)
	})

	next := make(map[int]int, len(edges))
	for k := 0; k+1 < len(verts); k += 2 {
		a, b := verts[k], verts[k+1]
		if a.pt.Y != b.pt.Y {
			panic("isocontour: odd number of stitcher endpoints on a horizontal line")
		}
		switch {
		case a.isEnd && !b.isEnd:
			next[a.edgeIdx] = b.edgeIdx
		case !a.isEnd && b.isEnd:
			next[b.edgeIdx] = a.edgeIdx
		default:
			panic("isocontour: stitching pair is not exactly one edge-end and one edge-start")
		}
	}

	var cycles []Cycle
	for len(next) > 0 {
		var start int
		for k := range next {
			start = k
			break
		}

		cur := start
		vertices := []vec.Vec2{edges[cur].end()}
		for {
			nxt, ok := next[cur]
			if !ok {
				panic("isocontour: stitch link map broken mid-cycle")
			}
			delete(next, cur)

			vertices = append(vertices, edges[nxt].start())
			if nxt == start {
				break
			}
			vertices = append(vertices, edges[nxt].end())
			cur = nxt
		}
		cycles = append(cycles, Cycle{Vertices: vertices})
	}
	return cycles
}

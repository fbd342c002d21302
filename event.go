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
)

// crossingType tags a sweep event as entering or exiting the active
// set of y-intervals. Entering sorts before Exiting at equal x, so
// that rectangles touching edge-to-edge fuse instead of notching.
type crossingType int8

const (
	entering crossingType = iota
	exiting
)

// event is a single sweep event: at x, the y-index interval [yLo,yHi)
// either enters or leaves the active set.
type event struct {
	x        float64
	crossing crossingType
	yLo, yHi int
}

// buildEvents produces the sorted event stream of §4.2 for the given
// non-empty rectangles, against the given y-scale.
func buildEvents(rects []Rect, scale yScale) []event {
	events := make([]event, 0, 2*len(rects))
	for _, r := range rects {
		lo := scale.indexOf[r.YLo]
		hi := scale.indexOf[r.YHi]
		events = append(events,
			event{x: r.XLo, crossing: entering, yLo: lo, yHi: hi},
			event{x: r.XHi, crossing: exiting, yLo: lo, yHi: hi},
		)
	}
	slices.SortFunc(events, func(a, b event) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		if c := cmp.Compare(a.crossing, b.crossing); c != 0 {
			return c
		}
		if c := cmp.Compare(a.yLo, b.yLo); c != 0 {
			return c
		}
		return cmp.Compare(a.yHi, b.yHi)
	})
	return events
}

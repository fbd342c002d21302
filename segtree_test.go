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
	"reflect"
	"testing"
)

func TestLeftSize(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{2, 1}, {3, 2}, {4, 2}, {5, 4}, {7, 4}, {8, 4}, {9, 8},
	}
	for _, tt := range tests {
		if got := leftSize(tt.n); got != tt.want {
			t.Errorf("leftSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSegmentTreeInsertRemoveRoundTrip(t *testing.T) {
	tree := newSegmentTree(4)

	var got []span
	emit := func(s span) { got = append(got, s) }

	tree.insert(span{0, 4}, emit)
	want := []span{{0, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("insert full range: got %v, want %v", got, want)
	}

	got = nil
	tree.remove(span{0, 4}, emit)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("remove full range: got %v, want %v", got, want)
	}
}

func TestSegmentTreeTwoDisjointSpans(t *testing.T) {
	tree := newSegmentTree(4)

	var got []span
	emit := func(s span) { got = append(got, s) }

	tree.insert(span{0, 1}, emit)
	tree.insert(span{3, 4}, emit)
	want := []span{{0, 1}, {3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSegmentTreeAdjacentSpansReportedSeparately(t *testing.T) {
	tree := newSegmentTree(4)

	var got []span
	emit := func(s span) { got = append(got, s) }

	tree.insert(span{0, 2}, emit)
	tree.insert(span{2, 4}, emit)
	want := []span{{0, 2}, {2, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Removing one reports exactly its own range; the other stays covered.
	got = nil
	tree.remove(span{0, 2}, emit)
	want = []span{{0, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestSegmentTreeShouldNotifySuppressesNestedInsert is the §9 "paper
// bug" regression: inserting a span strictly inside an already-active
// span must not report any boundary, even though the inner span's
// own nodes still need their insertion counts updated.
func TestSegmentTreeShouldNotifySuppressesNestedInsert(t *testing.T) {
	tree := newSegmentTree(4)

	var got []span
	emit := func(s span) { got = append(got, s) }

	tree.insert(span{0, 4}, emit)
	if len(got) != 1 {
		t.Fatalf("outer insert: got %v, want one span", got)
	}

	got = nil
	tree.insert(span{1, 3}, emit)
	if len(got) != 0 {
		t.Fatalf("nested insert emitted %v, want none", got)
	}

	// Removing the inner span must likewise report nothing: the outer
	// span still fully covers it.
	got = nil
	tree.remove(span{1, 3}, emit)
	if len(got) != 0 {
		t.Fatalf("nested remove emitted %v, want none", got)
	}

	// Only once the outer span is removed does [0,4) become exposed.
	got = nil
	tree.remove(span{0, 4}, emit)
	want := []span{{0, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("final remove: got %v, want %v", got, want)
	}
}

func TestSegmentTreeLeafPanicsOnMalformedSpan(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a span that does not contain the leaf it recursed into")
		}
	}()
	tree := newSegmentTree(1)
	// An inverted span is never produced by buildEvents, but a bug
	// upstream that fed one in must be caught here rather than
	// silently corrupting the tree.
	tree.insert(span{2, 1}, func(span) {})
}

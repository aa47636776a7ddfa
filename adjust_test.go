package islx

import "testing"

// TestAdjustMarkersOnInsert_PromotesAcrossIncomingEdge builds the tower by
// hand so the new node's height is pinned rather than left to the random
// source, then checks phase 2 of adjustMarkersOnInsert (§4.6): a marker
// whose path is split by the new node must be promoted onto the taller
// incoming edge the split makes available, not just left stamped on the
// abandoned lower-level edges.
//
// Geometry: A(10, height 2), B(20, height 1), D(50, height 1), C(90, height
// 2). Marker m = [10, 50] rides (A,0) then (B,0), since A's level-1 edge
// goes straight to C=90, overshooting e=50. Inserting a node at 30 with
// height 2 splices in directly after A at level 1 (A.next[1] = new), so m's
// maximal path becomes (A,1) then (new,0).
func TestAdjustMarkersOnInsert_PromotesAcrossIncomingEdge(t *testing.T) {
	isl := NewOrdered[int, string](0, 100)

	a := newNode[int, string](10, 2)
	b := newNode[int, string](20, 1)
	d := newNode[int, string](50, 1)
	c := newNode[int, string](90, 2)

	isl.head.next[0] = a
	isl.head.next[1] = a
	a.next[0] = b
	a.next[1] = c
	b.next[0] = d
	d.next[0] = c
	c.next[0] = isl.tail
	c.next[1] = isl.tail

	rec := isl.dir.insert("m", 10, 50)
	id := rec.id
	isl.size = 1

	a.starting.add(id, "m")
	a.endpoint.add(id, "m")
	d.ending.add(id, "m")
	d.endpoint.add(id, "m")
	a.markers[0].add(id, "m")
	b.markers[0].add(id, "m")

	update := make([]*node[int, string], maxHeight)
	next := isl.findClosestNode(30, update)
	if next != d {
		t.Fatalf("findClosestNode(30) = node at %v, want node at %v", next.index, d.index)
	}
	if update[0] != b || update[1] != a {
		t.Fatalf("update vector = [%v, %v, ...], want [B, A, ...]", update[0].index, update[1].index)
	}

	newN := newNode[int, string](30, 2)
	for level := 0; level < newN.height; level++ {
		newN.next[level] = update[level].next[level]
		update[level].next[level] = newN
	}
	isl.adjustMarkersOnInsert(newN, update)

	if a.markers[0].contains(id) {
		t.Errorf("marker still stamped on abandoned edge (A,0)")
	}
	if b.markers[0].contains(id) {
		t.Errorf("marker still stamped on abandoned edge (B,0)")
	}
	if !a.markers[1].contains(id) {
		t.Errorf("marker not promoted onto incoming edge (A,1)")
	}
	if !newN.markers[0].contains(id) {
		t.Errorf("marker not placed on outgoing edge (new,0)")
	}

	if err := isl.VerifyMarkerInvariant(); err != nil {
		t.Errorf("VerifyMarkerInvariant() error = %v", err)
	}
}

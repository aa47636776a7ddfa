package islx

import "github.com/RoaringBitmap/roaring"

// ═══════════════════════════════════════════════════════════════════════════════
// STABBING QUERIES: Finding What Covers a Point
// ═══════════════════════════════════════════════════════════════════════════════
// "Which markers contain x?" is answered by descendAccumulate: walk down the
// tower toward x exactly like findClosestNode, but at every level, before
// dropping down, sweep up the marker set on the edge the descent is resting
// on. Any marker stamped there covers some span that reaches at least to
// this point without overshooting x — which, by construction of the
// stair-step path, is exactly the set of markers covering x.
//
// WORKED EXAMPLE (x = 22, a = [10, 30], b = [20, 30]):
// -------------------------
//
//	Level 1: head --[10]---------[30]   edge (10,1) carries {a}
//	Level 0: head --[10]--[20]---[30]   edge (20,0) carries {b}
//
// At level 1 the descent advances to 10 and stops (30 >= 22), sweeping
// edge (10,1): {a}. At level 0 it advances to 20 and stops, sweeping edge
// (20,0): {b}. Result: [a, b].
//
// Every marker swept along the way — plus anything STARTING exactly at the
// landing node, if the descent lands exactly on x — is the answer.
// ═══════════════════════════════════════════════════════════════════════════════

// resultSet accumulates markers from several marker sets while deduping by
// slot id and preserving first-seen (insertion) order, matching §3's
// "all observable sequences... are in insertion order" guarantee for every
// single query; only multi-point findContaining and QueryBuilder leave
// order unspecified, per §9.
type resultSet[M comparable] struct {
	seen *roaring.Bitmap
	list []M
}

func newResultSet[M comparable]() *resultSet[M] {
	return &resultSet[M]{seen: roaring.NewBitmap()}
}

func (r *resultSet[M]) add(id uint32, m M) {
	if r.seen.Contains(id) {
		return
	}
	r.seen.Add(id)
	r.list = append(r.list, m)
}

func addAllMarkers[K any, M comparable](isl *ISL[K, M], r *resultSet[M], src *markerSet[M]) {
	for _, m := range src.snapshot() {
		rec := isl.mustRecord(m)
		r.add(rec.id, m)
	}
}

// descendAccumulate performs the shared top-down descent of §4.2: at each
// level above 0, advance while the next node undershoots x, accumulate the
// edge the descent rests on, then drop a level; at level 0 do the same
// and additionally step once past the resting point. The returned node is
// the landing node used by §4.2's "if its index equals x" check and by
// §4.3's range walks.
func (isl *ISL[K, M]) descendAccumulate(x K) (*node[K, M], *resultSet[M]) {
	res := newResultSet[M]()
	cur := isl.head
	for level := maxHeight - 1; level >= 1; level-- {
		for cur.next[level] != nil && isl.cmp(cur.next[level].index, x) < 0 {
			cur = cur.next[level]
		}
		addAllMarkers(isl, res, cur.markers[level])
	}
	for cur.next[0] != nil && isl.cmp(cur.next[0].index, x) < 0 {
		cur = cur.next[0]
	}
	addAllMarkers(isl, res, cur.markers[0])
	cur = cur.next[0]
	return cur, res
}

// FindContaining returns the markers whose interval contains every
// supplied point (§4.2). A single point uses the direct descent; multiple
// points sort and intersect the results for the minimum and maximum
// point, since an interval is convex and therefore contains every point
// between two it contains.
func (isl *ISL[K, M]) FindContaining(points ...K) []M {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return isl.findContainingOne(points[0])
	}

	sorted := append([]K(nil), points...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && isl.cmp(sorted[j], sorted[j-1]) < 0; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	lo := isl.findContainingOne(sorted[0])
	hi := isl.findContainingOne(sorted[len(sorted)-1])

	hiIDs := roaring.NewBitmap()
	for _, m := range hi {
		hiIDs.Add(isl.mustRecord(m).id)
	}

	var out []M
	for _, m := range lo {
		if hiIDs.Contains(isl.mustRecord(m).id) {
			out = append(out, m)
		}
	}
	return out
}

func (isl *ISL[K, M]) findContainingOne(x K) []M {
	landing, res := isl.descendAccumulate(x)
	if landing != isl.tail && isl.cmp(landing.index, x) == 0 {
		addAllMarkers(isl, res, landing.starting)
	}
	return res.list
}

// FindIntersecting returns every marker whose interval intersects
// [sStart, sEnd] (§4.3, §8 property 4).
func (isl *ISL[K, M]) FindIntersecting(sStart, sEnd K) []M {
	cur, res := isl.descendAccumulate(sStart)
	for cur != isl.tail && isl.cmp(cur.index, sEnd) <= 0 {
		addAllMarkers(isl, res, cur.starting)
		cur = cur.next[0]
	}
	return res.list
}

// FindStartingAt returns the markers whose interval starts exactly at x.
func (isl *ISL[K, M]) FindStartingAt(x K) []M {
	n := isl.findClosestNode(x, nil)
	if n == isl.tail || isl.cmp(n.index, x) != 0 {
		return nil
	}
	return n.starting.snapshot()
}

// FindEndingAt returns the markers whose interval ends exactly at x.
func (isl *ISL[K, M]) FindEndingAt(x K) []M {
	n := isl.findClosestNode(x, nil)
	if n == isl.tail || isl.cmp(n.index, x) != 0 {
		return nil
	}
	return n.ending.snapshot()
}

// FindStartingIn returns the markers whose start lies in [a, b].
func (isl *ISL[K, M]) FindStartingIn(a, b K) []M {
	res := newResultSet[M]()
	cur := isl.findClosestNode(a, nil)
	for cur != isl.tail && isl.cmp(cur.index, b) <= 0 {
		addAllMarkers(isl, res, cur.starting)
		cur = cur.next[0]
	}
	return res.list
}

// FindEndingIn returns the markers whose end lies in [a, b].
func (isl *ISL[K, M]) FindEndingIn(a, b K) []M {
	res := newResultSet[M]()
	cur := isl.findClosestNode(a, nil)
	for cur != isl.tail && isl.cmp(cur.index, b) <= 0 {
		addAllMarkers(isl, res, cur.ending)
		cur = cur.next[0]
	}
	return res.list
}

// FindContainedIn returns the markers whose interval lies entirely within
// [a, b]: those for which a starting node and a later-or-equal ending node
// were both observed during the walk.
func (isl *ISL[K, M]) FindContainedIn(a, b K) []M {
	seenStart := roaring.NewBitmap()
	res := newResultSet[M]()
	cur := isl.findClosestNode(a, nil)
	for cur != isl.tail && isl.cmp(cur.index, b) <= 0 {
		for _, m := range cur.starting.snapshot() {
			seenStart.Add(isl.mustRecord(m).id)
		}
		for _, m := range cur.ending.snapshot() {
			id := isl.mustRecord(m).id
			if seenStart.Contains(id) {
				res.add(id, m)
			}
		}
		cur = cur.next[0]
	}
	return res.list
}

// FindFirstAfterMin returns the markers starting at the first non-sentinel
// node, or nil if the container is empty.
func (isl *ISL[K, M]) FindFirstAfterMin() []M {
	if isl.head.next[0] == isl.tail {
		return nil
	}
	return isl.head.next[0].starting.snapshot()
}

// FindLastBeforeMax returns the markers ending at the last non-sentinel
// node, or nil if the container is empty. This is an O(n) level-0 walk by
// design (§9 open question); the tower isn't used to keep a tracked
// rightmost node.
func (isl *ISL[K, M]) FindLastBeforeMax() []M {
	var last *node[K, M]
	for cur := isl.head.next[0]; cur != isl.tail; cur = cur.next[0] {
		last = cur
	}
	if last == nil {
		return nil
	}
	return last.ending.snapshot()
}

// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS AN INTERVAL SKIP LIST?
// ═══════════════════════════════════════════════════════════════════════════════
// A plain skip list maps single points to presence/absence. An interval skip
// list maps opaque "markers" to whole CLOSED INTERVALS [s, e] over an ordered
// domain, and answers questions a point index can't:
//
//   - "which markers cover this point?"        (stabbing query)
//   - "which markers overlap this range?"       (range query)
//   - "which markers start/end inside this range?"
//
// STRUCTURE:
// ----------
// It is still a randomized tower of linked nodes, one per distinct endpoint
// of the intervals currently stored:
//
//	Level 2: head -------------------------> [50] --------------> tail
//	Level 1: head ------------> [20] -------> [50] --------------> tail
//	Level 0: head --> [10] --> [20] --> [30] -> [50] --> [90] --> tail
//
// The twist: every EDGE of the tower, not just every node, can carry a set of
// markers. A marker [10, 50] that rides the tallest edge it can without
// overshooting 50 is found by a stabbing query at one edge-set lookup per
// level descended, the same O(log n) shape as an ordinary skip list search.
//
// WHY EDGES INSTEAD OF NODES?
// ---------------------------
// Stamping markers on nodes would mean every query walks every node the
// interval touches — back to O(n). Stamping on edges lets one tall edge
// stand in for a whole run of nodes, which is the entire point of having a
// tower in the first place.
//
// Package islx implements exactly this: a generic, in-memory container
// mapping opaque markers to closed intervals over a totally ordered index
// domain, supporting stabbing and range queries in expected O(log n).
// ═══════════════════════════════════════════════════════════════════════════════
package islx

import (
	"cmp"
	"log/slog"
	"math/rand/v2"
)

// Comparator orders two index values, returning a negative number if a < b,
// zero if a == b, and a positive number if a > b.
type Comparator[K any] func(a, b K) int

// Interval is a closed span [Start, End] returned by IntervalsByMarker.
type Interval[K any] struct {
	Start, End K
}

// ═══════════════════════════════════════════════════════════════════════════════
// ISL: The Main Data Structure
// ═══════════════════════════════════════════════════════════════════════════════
// head and tail are permanent sentinel nodes at the domain's open bounds
// (minIndex, maxIndex) — every real node sits strictly between them. Keeping
// them at maxHeight means every level's chain always has something to start
// and stop at, so traversal code never special-cases an empty tower.
//
// dir is the marker -> (start, end, slot id) directory; size is tracked
// separately rather than derived from it so Len() is O(1).
// ═══════════════════════════════════════════════════════════════════════════════

// ISL is a marker-annotated interval skip list over index domain K and
// marker type M. The zero value is not usable; construct with New or
// NewOrdered.
type ISL[K any, M comparable] struct {
	cmp Comparator[K]

	head, tail *node[K, M]

	dir    *directory[K, M]
	height *heightSource
	log    *slog.Logger

	size int
}

// Option configures an ISL at construction time.
type Option[K any, M comparable] func(*ISL[K, M])

// WithLogger overrides the default (slog.Default()) logger.
func WithLogger[K any, M comparable](logger *slog.Logger) Option[K, M] {
	return func(isl *ISL[K, M]) { isl.log = logger }
}

// WithRand overrides the default auto-seeded height source with an
// explicit *rand.Rand, letting callers make tower heights replayable (e.g.
// rand.New(rand.NewPCG(seed1, seed2))).
func WithRand[K any, M comparable](rng *rand.Rand) Option[K, M] {
	return func(isl *ISL[K, M]) { isl.height = newHeightSource(rng) }
}

// New constructs an ISL over an arbitrary index domain using the supplied
// comparator. minIndex and maxIndex bound the domain and back the head and
// tail sentinels (I3); every inserted interval must satisfy
// minIndex < s <= e < maxIndex.
func New[K any, M comparable](cmp Comparator[K], minIndex, maxIndex K, opts ...Option[K, M]) *ISL[K, M] {
	isl := &ISL[K, M]{
		cmp:    cmp,
		dir:    newDirectory[K, M](),
		height: newHeightSource(nil),
		log:    slog.Default(),
	}
	isl.head = newNode[K, M](minIndex, maxHeight)
	isl.tail = newNode[K, M](maxIndex, maxHeight)
	for i := range isl.head.next {
		isl.head.next[i] = isl.tail
	}
	for _, opt := range opts {
		opt(isl)
	}
	return isl
}

// NewOrdered is a convenience constructor for index domains whose natural
// ordering (cmp.Compare) is the comparator to use.
func NewOrdered[K cmp.Ordered, M comparable](minIndex, maxIndex K, opts ...Option[K, M]) *ISL[K, M] {
	return New[K, M](func(a, b K) int { return cmp.Compare(a, b) }, minIndex, maxIndex, opts...)
}

// Len reports the number of markers currently stored.
func (isl *ISL[K, M]) Len() int {
	return isl.size
}

// Contains reports whether m is currently stored.
func (isl *ISL[K, M]) Contains(m M) bool {
	return isl.dir.has(m)
}

// IntervalsByMarker returns a snapshot of every stored marker's interval.
func (isl *ISL[K, M]) IntervalsByMarker() map[M]Interval[K] {
	out := make(map[M]Interval[K], isl.dir.size())
	for m, rec := range isl.dir.entries {
		out[m] = Interval[K]{Start: rec.start, End: rec.end}
	}
	return out
}

// ═══════════════════════════════════════════════════════════════════════════════
// findClosestNode: The Core Search Operation
// ═══════════════════════════════════════════════════════════════════════════════
// Every other operation in this package — insert, remove, and every find*
// query — is built on this one descent. Start at the highest level and work
// down:
//
//  1. At the current level, move right as far as possible while the next
//     node's index is still < target.
//  2. When you can't move right any further, record the node you're
//     standing on as update[level] and drop one level.
//  3. Repeat until level 0, then return cur.next[0].
//
// update afterward holds, at each level, the last node reached before
// falling through to the level below — exactly the splice points insertNode
// and removeNode need, and the per-level state descendAccumulate (query.go)
// needs to walk edge-marker sets alongside the same descent.
//
// VISUAL EXAMPLE (searching for 20):
// -----------------------------------
//
//	Level 1: head --[10]----------[30]   at head, level 1
//	                 ^^^                  jump to 10? yes (10 < 20)
//	                       ^^^            jump to 30? no  (30 >= 20) -> drop
//	Level 0: ...at 10...  [15]--[20]--[30]
//	                       ^^^            jump to 15? yes (15 < 20)
//	                             ^^^      jump to 20? no (20 >= 20) -> stop
//
// findClosestNode returns the node at 20 (or where 20 would be spliced in).
// ═══════════════════════════════════════════════════════════════════════════════

// findClosestNode descends the tower from head, recording in update (which,
// when non-nil, must have length maxHeight) the predecessor node encountered
// at each level, and returns the leftmost node whose index is >= target
// (§4.1).
func (isl *ISL[K, M]) findClosestNode(target K, update []*node[K, M]) *node[K, M] {
	cur := isl.head
	for level := maxHeight - 1; level >= 0; level-- {
		for cur.next[level] != nil && isl.cmp(cur.next[level].index, target) < 0 {
			cur = cur.next[level]
		}
		if update != nil {
			update[level] = cur
		}
	}
	return cur.next[0]
}

// findExact returns the node at exactly target, or nil if none exists.
func (isl *ISL[K, M]) findExact(target K) *node[K, M] {
	n := isl.findClosestNode(target, nil)
	if n != isl.tail && isl.cmp(n.index, target) == 0 {
		return n
	}
	return nil
}

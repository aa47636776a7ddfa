package islx

import "log/slog"

// ═══════════════════════════════════════════════════════════════════════════════
// INSERT: Splicing a Marker Into the Tower
// ═══════════════════════════════════════════════════════════════════════════════
// Inserting [s, e] has three parts:
//  1. Reserve a slot id and record (s, e) in the directory.
//  2. Ensure a node exists at s and at e (insertNode creates one, with a
//     random height, if none is there yet — and if that node is new, runs
//     adjustMarkersOnInsert to keep every OTHER marker's stair-step path
//     maximal across the newly split edges).
//  3. Stamp this marker's own maximal stair-step path from s to e.
//
// Remove runs the mirror image: unstamp the path, drop the endpoint
// bookkeeping, erase the directory entry, and delete either node if nothing
// else still anchors it there.
// ═══════════════════════════════════════════════════════════════════════════════

// Insert stores marker m over the closed interval [s, e]. It returns
// ErrInvalidArgument if m already exists, if s > e, or if either endpoint
// falls outside the container's open range (minIndex, maxIndex).
func (isl *ISL[K, M]) Insert(s, e K, m M) error {
	if isl.dir.has(m) {
		return errMarkerExists(m)
	}
	if isl.cmp(s, e) > 0 {
		return errBadInterval(s, e)
	}
	if isl.cmp(isl.head.index, s) >= 0 || isl.cmp(s, isl.tail.index) >= 0 {
		return errOutOfRange(s)
	}
	if isl.cmp(isl.head.index, e) >= 0 || isl.cmp(e, isl.tail.index) >= 0 {
		return errOutOfRange(e)
	}

	rec := isl.dir.insert(m, s, e)
	id := rec.id

	sNode := isl.insertNode(s)
	eNode := sNode
	if isl.cmp(s, e) != 0 {
		eNode = isl.insertNode(e)
	}

	sNode.starting.add(id, m)
	sNode.endpoint.add(id, m)
	eNode.ending.add(id, m)
	eNode.endpoint.add(id, m)

	if sNode != eNode {
		isl.stampPath(sNode, eNode, id, m)
	}

	isl.size++
	isl.log.Info("islx: inserted marker", slog.Any("marker", m), slog.Any("start", s), slog.Any("end", e))
	return nil
}

// Remove deletes marker m. It is a silent no-op if m is not currently
// stored: removing an unknown marker is defined behavior, not an error.
func (isl *ISL[K, M]) Remove(m M) error {
	rec, ok := isl.dir.get(m)
	if !ok {
		return nil
	}
	id := rec.id
	s, e := rec.start, rec.end

	sNode := isl.findExact(s)
	eNode := sNode
	if isl.cmp(s, e) != 0 {
		eNode = isl.findExact(e)
	}

	if sNode != eNode {
		isl.unstampPath(sNode, eNode, id, m)
	}

	sNode.starting.remove(id, m)
	sNode.endpoint.remove(id, m)
	eNode.ending.remove(id, m)
	eNode.endpoint.remove(id, m)

	isl.dir.remove(m)
	isl.size--

	if sNode.endpoint.isEmpty() {
		isl.removeNode(sNode)
	}
	if eNode != sNode && eNode.endpoint.isEmpty() {
		isl.removeNode(eNode)
	}

	isl.log.Info("islx: removed marker", slog.Any("marker", m))
	return nil
}

// Update replaces marker m's interval with [s, e]. It is exactly
// Remove(m) followed by Insert(s, e, m); since Remove is a silent no-op
// for a marker that doesn't exist, Update on an unknown marker simply
// inserts it.
func (isl *ISL[K, M]) Update(m M, s, e K) error {
	if err := isl.Remove(m); err != nil {
		return err
	}
	return isl.Insert(s, e, m)
}

// Clear removes every marker, resetting the container to its initial
// empty state.
func (isl *ISL[K, M]) Clear() {
	for i := range isl.head.next {
		isl.head.next[i] = isl.tail
	}
	isl.dir.clear()
	isl.size = 0
	isl.log.Info("islx: cleared container")
}

// insertNode returns the node at index, creating and splicing in a new
// one (running adjustMarkersOnInsert to preserve I7) if none exists yet.
func (isl *ISL[K, M]) insertNode(index K) *node[K, M] {
	update := make([]*node[K, M], maxHeight)
	next := isl.findClosestNode(index, update)
	if next != isl.tail && isl.cmp(next.index, index) == 0 {
		return next
	}

	height := isl.height.next()
	n := newNode[K, M](index, height)
	for level := 0; level < height; level++ {
		n.next[level] = update[level].next[level]
		update[level].next[level] = n
	}

	isl.adjustMarkersOnInsert(n, update)
	isl.log.Debug("islx: created node", slog.Any("index", index), slog.Int("height", height))
	return n
}

// removeNode unlinks n from the tower, running adjustMarkersOnRemove
// first to preserve I7. n must currently have an empty endpoint set.
func (isl *ISL[K, M]) removeNode(n *node[K, M]) {
	update := make([]*node[K, M], maxHeight)
	isl.findClosestNode(n.index, update)

	isl.adjustMarkersOnRemove(n, update)

	for level := 0; level < n.height; level++ {
		update[level].next[level] = n.next[level]
	}
	isl.log.Debug("islx: deleted node", slog.Any("index", n.index))
}

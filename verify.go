package islx

// VerifyMarkerInvariant walks the entire tower and confirms I7: for every
// marker m with interval [s, e], m is in the starting set at s and the
// ending set at e, and the set of edges stamped with m is exactly the
// maximal stair-step path from s to e, no more and no less. Starting and
// ending sets of other nodes are not searched for stray entries. It returns ErrInvariantViolation (wrapped with detail)
// on the first mismatch found, or nil if the container is well-formed.
//
// This is a diagnostic, not a hot-path check: it re-derives each marker's
// expected path with stampPath's own walk logic and compares node-by-node,
// so it costs roughly what a second full Insert of every marker would.
func (isl *ISL[K, M]) VerifyMarkerInvariant() error {
	for m, rec := range isl.dir.entries {
		sNode := isl.findExact(rec.start)
		if sNode == nil {
			return errInvariant("marker %v: no node at start %v", m, rec.start)
		}
		eNode := sNode
		if isl.cmp(rec.start, rec.end) != 0 {
			eNode = isl.findExact(rec.end)
			if eNode == nil {
				return errInvariant("marker %v: no node at end %v", m, rec.end)
			}
		}

		if !sNode.starting.contains(rec.id) {
			return errInvariant("marker %v: missing from starting set at %v", m, rec.start)
		}
		if !eNode.ending.contains(rec.id) {
			return errInvariant("marker %v: missing from ending set at %v", m, rec.end)
		}

		expected := isl.expectedPath(sNode, eNode)
		for n, levels := range expected {
			for _, level := range levels {
				if !n.markers[level].contains(rec.id) {
					return errInvariant("marker %v: missing from edge (index %v, level %d)", m, n.index, level)
				}
			}
		}
	}

	if err := isl.verifyNoStrayMarkers(); err != nil {
		return err
	}
	return nil
}

// expectedPath re-derives, without mutating anything, which (node, level)
// pairs stampPath would have stamped for the stair-step path from start to
// end.
func (isl *ISL[K, M]) expectedPath(start, end *node[K, M]) map[*node[K, M]][]int {
	out := make(map[*node[K, M]][]int)
	if start == end {
		return out
	}

	n := start
	level := 0
	for n != end && isl.cmp(n.next[level].index, end.index) <= 0 {
		for level < n.height-1 && isl.cmp(n.next[level+1].index, end.index) <= 0 {
			level++
		}
		out[n] = append(out[n], level)
		n = n.next[level]
	}
	for n != end {
		for level > 0 && isl.cmp(n.next[level].index, end.index) > 0 {
			level--
		}
		out[n] = append(out[n], level)
		n = n.next[level]
	}
	return out
}

// verifyNoStrayMarkers walks every edge in the tower and confirms every
// stamped marker is one the directory still recognizes as live and
// expects on that exact edge (the converse of the per-marker check above,
// catching leftover stamps a buggy demotion failed to clear).
func (isl *ISL[K, M]) verifyNoStrayMarkers() error {
	for cur := isl.head; cur != nil; cur = cur.next[0] {
		for level := 0; level < cur.height; level++ {
			for _, m := range cur.markers[level].snapshot() {
				rec, ok := isl.dir.get(m)
				if !ok {
					return errInvariant("stray marker %v on edge (index %v, level %d): not in directory", m, cur.index, level)
				}
				sNode := isl.findExact(rec.start)
				eNode := isl.findExact(rec.end)
				if sNode == eNode {
					return errInvariant("stray marker %v on edge (index %v, level %d): zero-width interval should have no edge stamps", m, cur.index, level)
				}
				levels := isl.expectedPath(sNode, eNode)[cur]
				if !containsInt(levels, level) {
					return errInvariant("stray marker %v on edge (index %v, level %d): not part of its stair-step path", m, cur.index, level)
				}
			}
		}
		if cur == isl.tail {
			break
		}
	}
	return nil
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

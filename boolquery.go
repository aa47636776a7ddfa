package islx

import "github.com/RoaringBitmap/roaring"

// ═══════════════════════════════════════════════════════════════════════════════
// COMBINING QUERIES WITH BOOLEAN LOGIC
// ═══════════════════════════════════════════════════════════════════════════════
// Any single find* call already returns a marker list. QueryBuilder lets
// several such lists be combined with AND / OR / NOT, the same way a search
// engine combines per-term postings lists — except every "posting" here is
// one find* result turned into a roaring bitmap of directory slot ids.
//
// EXAMPLE:
// --------
//
//	qb.Clause(isl.FindContaining(5)).And().Not().Clause(isl.FindEndingAt(10))
//	// markers containing 5, excluding any that also end at 10
//
// NOT needs a universe to subtract from — that's dir.allIDs(), every
// currently live slot id.
// ═══════════════════════════════════════════════════════════════════════════════

// QueryBuilder composes several find* results into a single boolean query
// over marker slot-id bitmaps (SPEC_FULL.md §10.2), adapted from
// Zeeeepa-blaze's term-bitmap QueryBuilder: instead of one bitmap per
// indexed term, every clause here is one bitmap per find* call on the same
// ISL.
type QueryBuilder[K any, M comparable] struct {
	isl    *ISL[K, M]
	stack  []*roaring.Bitmap
	ops    []queryOp
	negate bool
}

type queryOp int

const (
	opNone queryOp = iota
	opAnd
	opOr
)

// NewQueryBuilder starts a boolean query over isl's markers.
func NewQueryBuilder[K any, M comparable](isl *ISL[K, M]) *QueryBuilder[K, M] {
	return &QueryBuilder[K, M]{isl: isl}
}

// Clause pushes the result of an arbitrary find* call (or any marker
// slice) as the next operand, applying any pending Not.
func (qb *QueryBuilder[K, M]) Clause(markers []M) *QueryBuilder[K, M] {
	bm := roaring.NewBitmap()
	for _, m := range markers {
		bm.Add(qb.isl.mustRecord(m).id)
	}
	if qb.negate {
		bm = qb.negateBitmap(bm)
		qb.negate = false
	}
	qb.pushBitmap(bm)
	return qb
}

// And adds an AND operation joining the next clause to the accumulated
// result.
func (qb *QueryBuilder[K, M]) And() *QueryBuilder[K, M] {
	qb.ops = append(qb.ops, opAnd)
	return qb
}

// Or adds an OR operation joining the next clause to the accumulated
// result.
func (qb *QueryBuilder[K, M]) Or() *QueryBuilder[K, M] {
	qb.ops = append(qb.ops, opOr)
	return qb
}

// Not negates the next clause.
func (qb *QueryBuilder[K, M]) Not() *QueryBuilder[K, M] {
	qb.negate = true
	return qb
}

// Group nests a sub-query so its result can be combined as a single
// clause, controlling operator precedence:
//
//	qb.Group(func(q *QueryBuilder[K, M]) {
//	    q.Clause(a).Or().Clause(b)
//	}).And().Clause(c)
//	// (a OR b) AND c
func (qb *QueryBuilder[K, M]) Group(fn func(*QueryBuilder[K, M])) *QueryBuilder[K, M] {
	sub := NewQueryBuilder(qb.isl)
	fn(sub)
	result := sub.execute()
	if qb.negate {
		result = qb.negateBitmap(result)
		qb.negate = false
	}
	qb.pushBitmap(result)
	return qb
}

// Execute evaluates the accumulated clauses left to right and returns the
// matching markers. Order is unspecified, per §9.
func (qb *QueryBuilder[K, M]) Execute() []M {
	bm := qb.execute()
	out := make([]M, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		id := it.Next()
		if m, ok := qb.isl.dir.bySlot(id); ok {
			out = append(out, m)
		}
	}
	return out
}

func (qb *QueryBuilder[K, M]) execute() *roaring.Bitmap {
	if len(qb.stack) == 0 {
		return roaring.NewBitmap()
	}
	result := qb.stack[0]
	for i := 1; i < len(qb.stack); i++ {
		if i-1 >= len(qb.ops) {
			break
		}
		switch qb.ops[i-1] {
		case opAnd:
			result = roaring.And(result, qb.stack[i])
		case opOr:
			result = roaring.Or(result, qb.stack[i])
		}
	}
	return result
}

func (qb *QueryBuilder[K, M]) negateBitmap(bm *roaring.Bitmap) *roaring.Bitmap {
	universe := qb.isl.dir.allIDs()
	return roaring.AndNot(universe, bm)
}

func (qb *QueryBuilder[K, M]) pushBitmap(bm *roaring.Bitmap) {
	qb.stack = append(qb.stack, bm)
}

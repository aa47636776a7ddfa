package islx

import "testing"

func TestQueryBuilder_And(t *testing.T) {
	isl := NewOrdered[int, string](0, 100)
	mustInsert(t, isl, 1, 10, "a")
	mustInsert(t, isl, 5, 15, "b")
	mustInsert(t, isl, 1, 5, "c")

	startingAt1 := isl.FindStartingAt(1)  // a, c
	endingIn5to15 := isl.FindEndingIn(5, 15) // a, b, c

	got := NewQueryBuilder(isl).
		Clause(startingAt1).
		And().
		Clause(endingIn5to15).
		Execute()

	assertSameSet(t, got, []string{"a", "c"})
}

func TestQueryBuilder_Or(t *testing.T) {
	isl := NewOrdered[int, string](0, 100)
	mustInsert(t, isl, 1, 10, "a")
	mustInsert(t, isl, 20, 30, "b")
	mustInsert(t, isl, 40, 50, "c")

	got := NewQueryBuilder(isl).
		Clause(isl.FindStartingAt(1)).
		Or().
		Clause(isl.FindStartingAt(40)).
		Execute()

	assertSameSet(t, got, []string{"a", "c"})
}

func TestQueryBuilder_Not(t *testing.T) {
	isl := NewOrdered[int, string](0, 100)
	mustInsert(t, isl, 1, 10, "a")
	mustInsert(t, isl, 20, 30, "b")

	got := NewQueryBuilder(isl).
		Not().
		Clause(isl.FindStartingAt(1)).
		Execute()

	assertSameSet(t, got, []string{"b"})
}

func TestQueryBuilder_Group(t *testing.T) {
	isl := NewOrdered[int, string](0, 100)
	mustInsert(t, isl, 1, 10, "a")
	mustInsert(t, isl, 20, 30, "b")
	mustInsert(t, isl, 1, 30, "c")

	// (a OR b) AND c
	got := NewQueryBuilder(isl).
		Group(func(q *QueryBuilder[int, string]) {
			q.Clause(isl.FindStartingAt(1)).Or().Clause(isl.FindStartingAt(20))
		}).
		And().
		Clause(isl.FindContaining(15)).
		Execute()

	assertSameSet(t, got, []string{"c"})
}

func TestQueryBuilder_EmptyExecute(t *testing.T) {
	isl := NewOrdered[int, string](0, 100)
	got := NewQueryBuilder(isl).Execute()
	if len(got) != 0 {
		t.Errorf("Execute() on empty builder = %v, want empty", got)
	}
}

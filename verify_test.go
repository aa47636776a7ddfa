package islx

import "testing"

// S4: 100 random insert/remove operations (20% removes) on [0, 100);
// VerifyMarkerInvariant must succeed after every step.
func TestVerifyMarkerInvariant_S4(t *testing.T) {
	rng := deterministicRand(1234)
	isl := NewOrdered[int, int](0, 100, WithRand[int, int](rng))

	var live []int
	nextMarker := 0

	for step := 0; step < 100; step++ {
		if len(live) > 0 && rng.Float64() < 0.2 {
			idx := rng.IntN(len(live))
			m := live[idx]
			if err := isl.Remove(m); err != nil {
				t.Fatalf("step %d: Remove(%d) error = %v", step, m, err)
			}
			live = append(live[:idx], live[idx+1:]...)
		} else {
			s := rng.IntN(98) + 1
			e := s + rng.IntN(99-s)
			m := nextMarker
			nextMarker++
			if err := isl.Insert(s, e, m); err != nil {
				t.Fatalf("step %d: Insert(%d, %d, %d) error = %v", step, s, e, m, err)
			}
			live = append(live, m)
		}

		if err := isl.VerifyMarkerInvariant(); err != nil {
			t.Fatalf("step %d: VerifyMarkerInvariant() error = %v", step, err)
		}
	}

	if got := isl.Len(); got != len(live) {
		t.Errorf("Len() = %d, want %d", got, len(live))
	}
}

func TestVerifyMarkerInvariant_EmptyContainer(t *testing.T) {
	isl := NewOrdered[int, string](0, 100)
	if err := isl.VerifyMarkerInvariant(); err != nil {
		t.Errorf("VerifyMarkerInvariant() on empty container error = %v", err)
	}
}

func TestVerifyMarkerInvariant_AfterInsertAndRemove(t *testing.T) {
	rng := deterministicRand(55)
	isl := NewOrdered[int, string](0, 100, WithRand[int, string](rng))

	mustInsert(t, isl, 1, 50, "a")
	mustInsert(t, isl, 10, 90, "b")
	mustInsert(t, isl, 5, 5, "c")
	if err := isl.VerifyMarkerInvariant(); err != nil {
		t.Fatalf("VerifyMarkerInvariant() after inserts error = %v", err)
	}

	if err := isl.Remove("a"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := isl.VerifyMarkerInvariant(); err != nil {
		t.Fatalf("VerifyMarkerInvariant() after remove error = %v", err)
	}
}

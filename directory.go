package islx

import "github.com/RoaringBitmap/roaring"

// ═══════════════════════════════════════════════════════════════════════════════
// SLOT IDS: Why Markers Need a Second Identity
// ═══════════════════════════════════════════════════════════════════════════════
// Every marker-carrying set in this package — edge markers, starting/ending
// sets, QueryBuilder bitmaps — is backed by a roaring.Bitmap, which only
// stores uint32s. M can be any comparable type, so the directory assigns
// each live marker a dense uint32 slot id and is the only place that
// translates between the two. Slot ids are recycled from a free list on
// removal rather than handed out monotonically forever, so long-running
// containers with heavy insert/remove churn don't leak an ever-growing id
// space.
// ═══════════════════════════════════════════════════════════════════════════════

// intervalRecord is the directory's record of a live marker: the interval
// it was inserted with, and the dense slot id used to key it into every
// roaring bitmap it appears in.
type intervalRecord[K any] struct {
	start, end K
	id         uint32
}

// directory maps markers to their interval and slot id, and owns the slot
// id allocator. Slot ids are recycled on removal (free-list idiom adapted
// from holmberd-go-islist's node_pool.go get/put pattern) so long-running
// containers with heavy churn don't grow an unbounded id space. bySlotID is
// the reverse index QueryBuilder.Execute needs to turn a result bitmap back
// into markers.
type directory[K any, M comparable] struct {
	entries  map[M]*intervalRecord[K]
	bySlotID map[uint32]M
	free     []uint32
	next     uint32
}

func newDirectory[K any, M comparable]() *directory[K, M] {
	return &directory[K, M]{
		entries:  make(map[M]*intervalRecord[K]),
		bySlotID: make(map[uint32]M),
	}
}

func (d *directory[K, M]) has(m M) bool {
	_, ok := d.entries[m]
	return ok
}

func (d *directory[K, M]) get(m M) (*intervalRecord[K], bool) {
	r, ok := d.entries[m]
	return r, ok
}

func (d *directory[K, M]) insert(m M, start, end K) *intervalRecord[K] {
	rec := &intervalRecord[K]{start: start, end: end, id: d.alloc()}
	d.entries[m] = rec
	d.bySlotID[rec.id] = m
	return rec
}

func (d *directory[K, M]) remove(m M) (*intervalRecord[K], bool) {
	rec, ok := d.entries[m]
	if !ok {
		return nil, false
	}
	delete(d.entries, m)
	delete(d.bySlotID, rec.id)
	d.free = append(d.free, rec.id)
	return rec, true
}

// bySlot resolves a slot id back to its marker, for QueryBuilder.Execute.
func (d *directory[K, M]) bySlot(id uint32) (M, bool) {
	m, ok := d.bySlotID[id]
	return m, ok
}

// allIDs returns a fresh bitmap of every currently live slot id, the
// universe QueryBuilder.Not negates against.
func (d *directory[K, M]) allIDs() *roaring.Bitmap {
	bm := roaring.NewBitmap()
	for id := range d.bySlotID {
		bm.Add(id)
	}
	return bm
}

func (d *directory[K, M]) alloc() uint32 {
	if n := len(d.free); n > 0 {
		id := d.free[n-1]
		d.free = d.free[:n-1]
		return id
	}
	id := d.next
	d.next++
	return id
}

func (d *directory[K, M]) size() int {
	return len(d.entries)
}

func (d *directory[K, M]) clear() {
	d.entries = make(map[M]*intervalRecord[K])
	d.bySlotID = make(map[uint32]M)
	d.free = nil
	d.next = 0
}

package islx

import (
	"fmt"
	"io"
)

// Dump writes a human-readable, level-by-level textual rendering of the
// tower to w, for troubleshooting. Format follows the "one line per level,
// node indices left to right" convention shared by
// Zeeeepa-blaze/skiplist.go's Print and holmberd-go-islist/islist.go's
// Print.
func (isl *ISL[K, M]) Dump(w io.Writer) {
	fmt.Fprintf(w, "islx: %d marker(s), head=%v tail=%v\n", isl.size, isl.head.index, isl.tail.index)
	for level := maxHeight - 1; level >= 0; level-- {
		fmt.Fprintf(w, "L%d: head", level)
		if cnt := isl.head.markers[level].len(); cnt > 0 {
			fmt.Fprintf(w, "[%d]", cnt)
		}
		for n := isl.head.next[level]; n != nil && n != isl.tail; n = n.next[level] {
			fmt.Fprintf(w, " -> %v", n.index)
			if cnt := n.markers[level].len(); cnt > 0 {
				fmt.Fprintf(w, "[%d]", cnt)
			}
		}
		fmt.Fprintf(w, " -> tail\n")
	}
}

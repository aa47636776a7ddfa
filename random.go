package islx

import "math/rand/v2"

const (
	// maxHeight (H) bounds every tower, including the sentinels, per I3.
	maxHeight = 8
	// promotionProbability (p) is the per-level coin-flip probability used
	// by the geometric height draw.
	promotionProbability = 0.25
)

// heightSource draws random tower heights. It wraps an injectable
// *rand.Rand rather than reseeding per call: holmberd-go-islist's
// randomLevel (math/rand/v2, an injected *rand.PCG) is the grounding here,
// not blaze's randomHeight, which rebuilds a time-seeded source on every
// invocation and so can never be replayed deterministically — this
// container needs replay for S4's property tests.
type heightSource struct {
	rng *rand.Rand
}

func newHeightSource(rng *rand.Rand) *heightSource {
	if rng == nil {
		rng = defaultRand()
	}
	return &heightSource{rng: rng}
}

// defaultRand seeds a PCG from the package-level (already auto-seeded)
// generator, so a fresh ISL is randomized without callers having to thread
// a seed through just to get non-deterministic behavior.
func defaultRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// next draws height(n) = 1 + G, G geometric with success probability p,
// clamped to maxHeight.
func (h *heightSource) next() int {
	height := 1
	for height < maxHeight && h.rng.Float64() < promotionProbability {
		height++
	}
	return height
}

package islx

import "math/rand/v2"

// deterministicRand gives tests a reproducible height source, since the
// package's default (two calls into the package-level rand.Uint64) can't
// be replayed across runs.
func deterministicRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

package playlist

import "math/rand/v2"

// Rand is the random source used for shuffling.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// NewRand returns a seeded source. The same seed always yields the same shuffles.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Shuffle moves every track of p, in random order, into a new playlist and
// returns it. p is empty afterwards.
//
// At each step a position is drawn uniformly in [1, Len()] of what remains,
// that track is removed and appended to the result.
func (p *Playlist) Shuffle(rng Rand) *Playlist {
	out := &Playlist{}
	if p == nil {
		return out
	}
	for p.size > 0 {
		position := rng.IntN(p.size) + 1
		out.pushBack(p.removeAt(position))
	}
	out.assertInvariants()
	return out
}

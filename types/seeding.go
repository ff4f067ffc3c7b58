package types

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRand returns a generator seeded with seed, or with a fresh seed when nil,
// along with the seed that was used
func NewRand(seed *uint64) (*rand.Rand, uint64) {
	var s uint64
	if seed != nil {
		s = *seed
	} else {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(s)), s
}

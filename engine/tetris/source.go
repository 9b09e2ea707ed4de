package tetris

import (
	"math/rand"
	"time"

	"termtris/types"
)

// PieceSource supplies the kind of each spawned piece.
type PieceSource interface {
	Next() types.Cell
}

// RandomSource picks each kind uniformly at random.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a source seeded with seed, or with the current time if seed is 0.
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSource) Next() types.Cell {
	return Kinds[s.rng.Intn(len(Kinds))]
}

// SequenceSource cycles through a fixed list of kinds.
type SequenceSource struct {
	kinds []types.Cell
	pos   int
}

// NewSequenceSource returns a source repeating kinds in order. Empty and
// invalid entries are dropped; an empty list yields I pieces.
func NewSequenceSource(kinds ...types.Cell) *SequenceSource {
	s := &SequenceSource{}
	for _, k := range kinds {
		if k != types.Empty && k.Valid() {
			s.kinds = append(s.kinds, k)
		}
	}
	if len(s.kinds) == 0 {
		s.kinds = []types.Cell{types.I}
	}
	return s
}

func (s *SequenceSource) Next() types.Cell {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}

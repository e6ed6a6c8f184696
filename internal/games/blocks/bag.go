package blocks

import "math/rand"

// PieceSource produces the sequence of piece types entering play.
// The engine consumes it one type at a time; tests substitute scripted
// sources for deterministic piece orders.
type PieceSource interface {
	Next() PieceType
}

// Bag is the classic 7-bag randomizer: an ordered sequence of all seven
// piece types, consumed one at a time and reshuffled uniformly whenever
// exhausted. Within any refill-aligned window of 7 draws, each type
// appears exactly once.
type Bag struct {
	rng   *rand.Rand
	queue []PieceType
}

// NewBag creates a seeded bag. The same seed yields the same draw sequence.
func NewBag(seed int64) *Bag {
	return &Bag{
		rng:   rand.New(rand.NewSource(seed)),
		queue: make([]PieceType, 0, int(PieceTypeCount)),
	}
}

// Next draws the next piece type, refilling and shuffling when the bag
// is empty.
func (b *Bag) Next() PieceType {
	if len(b.queue) == 0 {
		b.refill()
	}
	t := b.queue[0]
	b.queue = b.queue[1:]
	return t
}

// refill restocks the bag with one of each type in uniform random order.
func (b *Bag) refill() {
	b.queue = b.queue[:0]
	for t := PieceType(0); t < PieceTypeCount; t++ {
		b.queue = append(b.queue, t)
	}
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}

package tetris

import "math/rand"

// Bag produces the upcoming piece sequence using the shuffled 7-bag rule:
// all seven shapes are dealt in random order before any shape repeats, so no
// shape can drought for more than 12 pieces. The generator is seeded
// explicitly, which makes whole games reproducible for testing.
type Bag struct {
	rng   *rand.Rand
	queue []Shape
}

// NewBag creates a bag seeded with the given value.
func NewBag(seed int64) *Bag {
	return &Bag{
		rng:   rand.New(rand.NewSource(seed)),
		queue: make([]Shape, 0, ShapeCount),
	}
}

// refill shuffles a fresh set of all seven shapes onto the queue.
func (b *Bag) refill() {
	fresh := [ShapeCount]Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}
	b.rng.Shuffle(ShapeCount, func(i, j int) {
		fresh[i], fresh[j] = fresh[j], fresh[i]
	})
	b.queue = append(b.queue, fresh[:]...)
}

// Next dequeues and returns the next shape.
func (b *Bag) Next() Shape {
	if len(b.queue) == 0 {
		b.refill()
	}
	s := b.queue[0]
	b.queue = b.queue[1:]
	return s
}

// Peek returns the next shape without consuming it. Used for the next-piece
// preview.
func (b *Bag) Peek() Shape {
	if len(b.queue) == 0 {
		b.refill()
	}
	return b.queue[0]
}

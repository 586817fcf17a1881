package core

// Randomizer is the source of uniform integers in [0, n).
// *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// KindSource picks the kind of the next generated piece.
type KindSource interface {
	Next() PieceKind
	// Peek returns the kind Next would return without consuming it.
	Peek() PieceKind
}

// UniformSource draws every kind independently with equal probability.
type UniformSource struct {
	rng     Randomizer
	pending PieceKind
}

// NewUniformSource creates a uniform kind source.
func NewUniformSource(rng Randomizer) *UniformSource {
	return &UniformSource{rng: rng}
}

// Next returns a uniformly chosen playable kind.
func (u *UniformSource) Next() PieceKind {
	k := u.Peek()
	u.pending = KindNone
	return k
}

// Peek returns the upcoming kind, drawing it if needed.
func (u *UniformSource) Peek() PieceKind {
	if u.pending == KindNone {
		u.pending = KindT + PieceKind(u.rng.Intn(int(kindCount-KindT)))
	}
	return u.pending
}

// BagSource deals kinds from a shuffled bag of all seven, refilled when empty.
// Every run of seven consecutive bag deals contains each kind exactly once.
type BagSource struct {
	rng Randomizer
	bag []PieceKind
}

// NewBagSource creates a 7-bag kind source.
func NewBagSource(rng Randomizer) *BagSource {
	return &BagSource{rng: rng}
}

// Next returns the next kind from the bag.
func (b *BagSource) Next() PieceKind {
	k := b.Peek()
	b.bag = b.bag[1:]
	return k
}

// Peek returns the next kind without consuming it.
func (b *BagSource) Peek() PieceKind {
	if len(b.bag) == 0 {
		b.refill()
	}
	return b.bag[0]
}

func (b *BagSource) refill() {
	b.bag = AllKinds()
	// Fisher-Yates shuffle
	for i := len(b.bag) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	}
}

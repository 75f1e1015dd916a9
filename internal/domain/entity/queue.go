package entity

import (
	"fmt"
	"math/rand"
)

// TypeQueue hands out common ingredient types without repeats until every
// type has been drawn once, then reshuffles.
type TypeQueue struct {
	types []int
	index int
	rng   *rand.Rand
}

// NewTypeQueue creates a queue over [0, count) with a fresh shuffle.
func NewTypeQueue(count int, rng *rand.Rand) *TypeQueue {
	if count < 1 {
		panic(fmt.Sprintf("entity: type queue needs at least one type, got %d", count))
	}
	q := &TypeQueue{types: make([]int, count), rng: rng}
	q.shuffle()
	return q
}

// Next returns the next type, reshuffling first when the current
// permutation is used up.
func (q *TypeQueue) Next() int {
	if q.index >= len(q.types) {
		q.shuffle()
	}
	t := q.types[q.index]
	q.index++
	return t
}

func (q *TypeQueue) shuffle() {
	for i := range q.types {
		q.types[i] = i
	}
	q.rng.Shuffle(len(q.types), func(i, j int) {
		q.types[i], q.types[j] = q.types[j], q.types[i]
	})
	q.index = 0
}

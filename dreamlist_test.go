package dreamlist

import (
	"math"
	"math/rand"

	"github.com/samber/lo"
)

// newList pushes values in order, so the last one is the head.
func newList[T any](values ...T) *List[T] {
	return New[T](WithValues(values...))
}

// pushOrder returns the values 1..n in push order.
func pushOrder(n int) []int {
	return lo.Map(lo.Range(n), func(i int, _ int) int { return i + 1 })
}

// modelPosition is the head-first slice position index resolves to in a list of length n, or -1 if out of range.
func modelPosition(n int, index float64) int {
	count := float64(n) - 2
	if math.IsNaN(index) || index < -1 || index > count {
		return -1
	}
	target := index
	if index != math.Trunc(index) {
		target++
	}
	return lo.Max([]int{0, int(math.Ceil(count - target))})
}

// randomIndex returns a whole or half index, sometimes out of range, for a list of length n.
func randomIndex(r *rand.Rand, n int) float64 {
	return float64(r.Intn(2*n+6)-4) / 2
}

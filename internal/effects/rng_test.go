package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGIntnTwoWayIsNotAlternating(t *testing.T) {
	rng := NewRNG(42)

	draws := make([]int, 32)
	for i := range draws {
		draws[i] = rng.Intn(2)
	}

	alternating := true
	for i := 1; i < len(draws); i++ {
		if draws[i] == draws[i-1] {
			alternating = false
			break
		}
	}
	assert.False(t, alternating, "draws: %v", draws)
}

func TestRNGIntnCoversRange(t *testing.T) {
	rng := NewRNG(3)

	counts := make([]int, 5)
	for range 1000 {
		v := rng.Intn(len(counts))
		if !assert.True(t, v >= 0 && v < len(counts)) {
			return
		}
		counts[v]++
	}
	for i, c := range counts {
		assert.Greater(t, c, 100, "value %d drawn %d times", i, c)
	}
}

func TestRNGIntnNonPositive(t *testing.T) {
	rng := NewRNG(1)
	assert.Equal(t, 0, rng.Intn(0))
	assert.Equal(t, 0, rng.Intn(-3))
}

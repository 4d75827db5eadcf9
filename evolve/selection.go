package evolve

import (
	"errors"
	"fmt"
	"math/rand"
)

// SelectionMethod picks one population member, biased by fitness.
// It works on the fitness values alone and returns the index of the chosen
// member, which keeps the orchestrator generic over the member type.
// Selection never removes the chosen member; the same index may be returned
// repeatedly, including for both parents of a single child.
type SelectionMethod interface {
	Select(rng *rand.Rand, fitnesses []float64) (int, error)
}

// RouletteWheelSelection implements fitness-proportionate selection:
// the probability of picking member i is fitness(i) divided by the total
// fitness of the population.
type RouletteWheelSelection struct{}

// NewRouletteWheelSelection creates a new RouletteWheelSelection operator.
func NewRouletteWheelSelection() *RouletteWheelSelection {
	return &RouletteWheelSelection{}
}

// Select returns the index of the chosen member. It fails on an empty
// population, on any negative fitness, and when no member has strictly
// positive fitness, since weighted sampling cannot proceed in those cases.
func (rw *RouletteWheelSelection) Select(rng *rand.Rand, fitnesses []float64) (int, error) {
	if len(fitnesses) == 0 {
		return 0, errors.New("cannot select from an empty population")
	}

	total := 0.0
	for i, f := range fitnesses {
		if f < 0 {
			return 0, fmt.Errorf("roulette-wheel selection requires non-negative fitness, member %d has %v", i, f)
		}
		total += f
	}
	if total <= 0 {
		return 0, errors.New("roulette-wheel selection requires at least one member with positive fitness")
	}

	target := rng.Float64() * total
	acc := 0.0
	for i, f := range fitnesses {
		acc += f
		if target < acc {
			return i, nil
		}
	}
	// Float rounding can leave target marginally at or past the last slot.
	return len(fitnesses) - 1, nil
}

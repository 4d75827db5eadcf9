package evolve

import (
	"fmt"
	"math/rand"
)

// CrossoverMethod produces one child chromosome from two parent chromosomes.
// Implementations draw all randomness from the supplied rng, so the child is
// fully determined by the rng's state.
type CrossoverMethod interface {
	Crossover(rng *rand.Rand, parentA, parentB *Chromosome) (*Chromosome, error)
}

// UniformCrossover builds the child gene by gene, taking each position from
// one of the two parents with equal probability.
type UniformCrossover struct{}

// NewUniformCrossover creates a new UniformCrossover operator.
func NewUniformCrossover() *UniformCrossover {
	return &UniformCrossover{}
}

// Crossover returns a child chromosome of the parents' common length.
// For each position it draws one fair coin flip: heads takes parent A's
// gene, tails parent B's. Parents of different lengths are a precondition
// violation and return an error.
func (uc *UniformCrossover) Crossover(rng *rand.Rand, parentA, parentB *Chromosome) (*Chromosome, error) {
	if parentA.Len() != parentB.Len() {
		return nil, fmt.Errorf("crossover requires parents of equal length: got %d and %d", parentA.Len(), parentB.Len())
	}

	genes := make([]float64, parentA.Len())
	for i := range genes {
		if rng.Float64() < 0.5 {
			genes[i] = parentA.genes[i]
		} else {
			genes[i] = parentB.genes[i]
		}
	}
	return &Chromosome{genes: genes}, nil
}

package evolve

import (
	"fmt"
	"math/rand"
)

// MutationMethod perturbs a chromosome's genes in place.
type MutationMethod interface {
	Mutate(rng *rand.Rand, child *Chromosome)
}

// GaussianMutation perturbs each gene with a fixed probability by a random
// amount scaled by a fixed coefficient.
type GaussianMutation struct {
	chance float64
	coeff  float64
}

// NewGaussianMutation creates a Gaussian mutation operator.
// chance is the probability that any given gene is perturbed and must lie
// in [0, 1]; coeff scales the perturbation and is unconstrained.
func NewGaussianMutation(chance, coeff float64) (*GaussianMutation, error) {
	if chance < 0.0 || chance > 1.0 {
		return nil, fmt.Errorf("mutation chance must be in [0, 1], got %v", chance)
	}
	return &GaussianMutation{chance: chance, coeff: coeff}, nil
}

// Mutate perturbs the chromosome in place. For every gene it draws a sign
// uniformly from {-1, +1}, then with probability chance adds
// sign * coeff * magnitude, with the magnitude drawn uniformly from [0, 1).
//
// The sign draw is consumed even when the perturbation is skipped. This
// fixes the rng consumption order, so a run is reproducible regardless of
// which genes end up mutated. With chance 0 every gene is left bit-for-bit
// unchanged although draws still occur.
func (gm *GaussianMutation) Mutate(rng *rand.Rand, child *Chromosome) {
	for i := range child.genes {
		sign := 1.0
		if rng.Float64() < 0.5 {
			sign = -1.0
		}
		if rng.Float64() < gm.chance {
			child.genes[i] += sign * gm.coeff * rng.Float64()
		}
	}
}

package evolve_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/evolve-go/evolve"
)

func TestNewGaussianMutationValidatesChance(t *testing.T) {
	for _, chance := range []float64{-0.1, 1.1, 2.0, math.Inf(1)} {
		_, err := evolve.NewGaussianMutation(chance, 0.5)
		assert.Error(t, err, "chance %v must be rejected", chance)
	}
	for _, chance := range []float64{0.0, 0.5, 1.0} {
		_, err := evolve.NewGaussianMutation(chance, 0.5)
		assert.NoError(t, err, "chance %v must be accepted", chance)
	}
}

func TestZeroChanceLeavesChromosomeUnchanged(t *testing.T) {
	for _, coeff := range []float64{0.0, 0.5, 100.0} {
		child := evolve.NewChromosome([]float64{1.0, 2.0, 3.0, 4.0, 5.0})
		rng := rand.New(rand.NewSource(1))

		mutation, err := evolve.NewGaussianMutation(0.0, coeff)
		require.NoError(t, err)
		mutation.Mutate(rng, child)

		// Bit-for-bit unchanged, even though rng draws were consumed.
		assert.Equal(t, []float64{1.0, 2.0, 3.0, 4.0, 5.0}, child.Genes(),
			"coefficient %v", coeff)
	}
}

func TestZeroCoefficientLeavesChromosomeUnchanged(t *testing.T) {
	child := evolve.NewChromosome([]float64{1.0, 2.0, 3.0, 4.0, 5.0})
	rng := rand.New(rand.NewSource(1))

	mutation, err := evolve.NewGaussianMutation(1.0, 0.0)
	require.NoError(t, err)
	mutation.Mutate(rng, child)

	assert.Equal(t, []float64{1.0, 2.0, 3.0, 4.0, 5.0}, child.Genes())
}

func TestMutationPerturbationIsBounded(t *testing.T) {
	original := []float64{1.0, 2.0, 3.0, 4.0, 5.0}
	child := evolve.NewChromosome(original)
	rng := rand.New(rand.NewSource(1))

	coeff := 0.5
	mutation, err := evolve.NewGaussianMutation(1.0, coeff)
	require.NoError(t, err)
	mutation.Mutate(rng, child)

	changed := false
	for i, gene := range child.Genes() {
		assert.LessOrEqual(t, math.Abs(gene-original[i]), coeff,
			"gene %d moved further than the coefficient allows", i)
		if gene != original[i] {
			changed = true
		}
	}
	assert.True(t, changed, "with chance 1 the chromosome should have moved")
}

func TestMutationIsDeterministic(t *testing.T) {
	mutate := func(seed int64) []float64 {
		child := evolve.NewChromosome([]float64{1.0, 2.0, 3.0, 4.0, 5.0})
		mutation, err := evolve.NewGaussianMutation(0.5, 0.5)
		require.NoError(t, err)
		mutation.Mutate(rand.New(rand.NewSource(seed)), child)
		return child.Genes()
	}

	assert.Equal(t, mutate(3), mutate(3))
	assert.NotEqual(t, mutate(3), mutate(4))
}

package evolve_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/evolve-go/evolve"
)

func testConfig(popSize int) *evolve.Config {
	return &evolve.Config{
		Evolution: evolve.EvolutionConfig{
			PopSize:          popSize,
			MaxGenerations:   50,
			FitnessCriterion: "max",
			FitnessThreshold: 1000.0,
			Seed:             1,
		},
		Mutation: evolve.MutationConfig{Chance: 0.0, Coefficient: 0.5},
		Network:  evolve.NetworkConfig{LayerSizes: []int{2, 1}},
	}
}

func noopEvaluate(generation int, members []*testIndividual) error {
	return nil
}

func TestNewPopulationValidatesMemberCount(t *testing.T) {
	config := testConfig(4)
	rng := rand.New(rand.NewSource(1))
	ga := newTestAlgorithm(t, 0.0, 0.5)

	_, err := evolve.NewPopulation(config, rng, ga, chromosomePopulation(3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pop_size")
}

func TestNewPopulationValidatesArguments(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ga := newTestAlgorithm(t, 0.0, 0.5)

	_, err := evolve.NewPopulation(nil, rng, ga, chromosomePopulation(4))
	assert.Error(t, err)

	_, err = evolve.NewPopulation(testConfig(4), nil, ga, chromosomePopulation(4))
	assert.Error(t, err)

	_, err = evolve.NewPopulation[*testIndividual](testConfig(4), rng, nil, chromosomePopulation(4))
	assert.Error(t, err)
}

func TestRunGenerationReplacesWholePopulation(t *testing.T) {
	config := testConfig(6)
	config.Evolution.NoFitnessTermination = true
	rng := rand.New(rand.NewSource(1))

	members := chromosomePopulation(6)
	pop, err := evolve.NewPopulation(config, rng, newTestAlgorithm(t, 0.0, 0.5), members)
	require.NoError(t, err)

	done, err := pop.RunGeneration(noopEvaluate)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, pop.Generation)
	assert.Len(t, pop.Members, 6)

	// Full generational replacement: the member slice is a fresh one.
	for i, m := range members {
		for _, next := range pop.Members {
			if m == next {
				t.Fatalf("member %d was carried over into the next generation", i)
			}
		}
	}
}

func TestRunGenerationStopsAtFitnessThreshold(t *testing.T) {
	config := testConfig(3)
	config.Evolution.FitnessThreshold = 4.0

	// Fixed-fitness members; the threshold is met immediately, so the
	// generational step (which needs chromosomes) is never reached.
	members := []*testIndividual{
		newTestIndividualWithFitness(1.0),
		newTestIndividualWithFitness(2.0),
		newTestIndividualWithFitness(5.0),
	}

	pop, err := evolve.NewPopulation(config, rand.New(rand.NewSource(1)), newTestAlgorithm(t, 0.0, 0.5), members)
	require.NoError(t, err)

	done, err := pop.RunGeneration(noopEvaluate)
	require.NoError(t, err)
	assert.True(t, done)

	best, fitness, ok := pop.Best()
	require.True(t, ok)
	assert.Equal(t, 5.0, fitness)
	assert.Same(t, members[2], best)
}

func TestRunGenerationStopsOnStagnation(t *testing.T) {
	config := testConfig(4)
	config.Evolution.NoFitnessTermination = true
	config.Evolution.MaxStagnation = 3

	// Identical chromosomes and zero mutation chance keep the criterion
	// score flat, so the run stops once the stagnation window elapses.
	members := make([]*testIndividual, 4)
	for i := range members {
		members[i] = newTestIndividualWithChromosome(evolve.NewChromosome([]float64{1.0, 1.0}))
	}

	pop, err := evolve.NewPopulation(config, rand.New(rand.NewSource(1)), newTestAlgorithm(t, 0.0, 0.5), members)
	require.NoError(t, err)

	generations := 0
	for {
		done, err := pop.RunGeneration(noopEvaluate)
		require.NoError(t, err)
		generations++
		if done {
			break
		}
		require.Less(t, generations, 20, "stagnation stop never triggered")
	}

	// Improvement lands in generation 1; the stop fires three flat
	// generations later.
	assert.Equal(t, 4, generations)
}

func TestRunReturnsBestMember(t *testing.T) {
	config := testConfig(5)
	config.Evolution.NoFitnessTermination = true
	config.Evolution.MaxGenerations = 10

	pop, err := evolve.NewPopulation(config, rand.New(rand.NewSource(1)), newTestAlgorithm(t, 0.0, 0.5), chromosomePopulation(5))
	require.NoError(t, err)

	best, err := pop.Run(noopEvaluate)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 10, pop.Generation)

	_, fitness, ok := pop.Best()
	require.True(t, ok)
	assert.Equal(t, best.Fitness(), fitness)
}

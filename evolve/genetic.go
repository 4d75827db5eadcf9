package evolve

import (
	"errors"
	"fmt"
	"math/rand"
)

// Individual is implemented by anything that can take part in evolution:
// it reports a scalar fitness and exposes its chromosome. The factory
// passed to NewGeneticAlgorithm covers the third capability, rebuilding a
// member from a child chromosome, so the orchestrator never inspects
// phenotype details.
type Individual interface {
	Fitness() float64
	Chromosome() *Chromosome
}

// GeneticAlgorithm composes a selection, crossover and mutation operator
// into a single generational step over a population of I. It holds no
// per-generation state; all state lives in the caller's population slice.
type GeneticAlgorithm[I Individual] struct {
	selection SelectionMethod
	crossover CrossoverMethod
	mutation  MutationMethod
	create    func(*Chromosome) I
}

// NewGeneticAlgorithm creates a genetic algorithm from the three operators
// and a factory that rebuilds an individual from a chromosome.
func NewGeneticAlgorithm[I Individual](
	selection SelectionMethod,
	crossover CrossoverMethod,
	mutation MutationMethod,
	create func(*Chromosome) I,
) *GeneticAlgorithm[I] {
	return &GeneticAlgorithm[I]{
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
		create:    create,
	}
}

// Evolve produces the next generation. Given a population of size N it
// returns a freshly allocated population of size N built by N independent
// iterations: select parent A, select parent B (independently, possibly
// the same member), cross their chromosomes into a child, mutate the child
// in place and rebuild an individual from it. The input population is
// never modified and no member is carried over.
//
// The rng draw order per child is fixed: two selections, then all
// crossover flips, then all mutation draws. A fixed seed therefore yields
// a reproducible output population.
func (ga *GeneticAlgorithm[I]) Evolve(rng *rand.Rand, population []I) ([]I, error) {
	if len(population) == 0 {
		return nil, errors.New("cannot evolve an empty population")
	}

	fitnesses := make([]float64, len(population))
	for i, member := range population {
		fitnesses[i] = member.Fitness()
	}

	next := make([]I, len(population))
	for i := range next {
		idxA, err := ga.selection.Select(rng, fitnesses)
		if err != nil {
			return nil, fmt.Errorf("failed to select parent A for child %d: %w", i, err)
		}
		idxB, err := ga.selection.Select(rng, fitnesses)
		if err != nil {
			return nil, fmt.Errorf("failed to select parent B for child %d: %w", i, err)
		}

		child, err := ga.crossover.Crossover(rng, population[idxA].Chromosome(), population[idxB].Chromosome())
		if err != nil {
			return nil, fmt.Errorf("failed crossover for child %d: %w", i, err)
		}
		ga.mutation.Mutate(rng, child)

		next[i] = ga.create(child)
	}
	return next, nil
}

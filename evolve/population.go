package evolve

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// EvaluateFunc is the function provided by the user to evaluate member
// fitness. It is called once per generation, before the generational step,
// and should leave every member's Fitness() reflecting the evaluation.
type EvaluateFunc[I Individual] func(generation int, members []I) error

// Population drives repeated generational steps over a member slice.
// The algorithm itself is stateless; the population owns the member slice,
// the random source and the bookkeeping around termination.
type Population[I Individual] struct {
	Config     *Config
	Members    []I
	Algorithm  *GeneticAlgorithm[I]
	Generation int

	rng       *rand.Rand
	criterion func([]float64) float64

	best        I
	bestFitness float64
	haveBest    bool

	bestScore       float64
	lastImprovement int
}

// NewPopulation creates a population from an already constructed member
// slice. The member count must match the configured pop_size; the random
// source is supplied by the caller so runs are reproducible.
func NewPopulation[I Individual](config *Config, rng *rand.Rand, algorithm *GeneticAlgorithm[I], members []I) (*Population[I], error) {
	if config == nil {
		return nil, errors.New("config must not be nil")
	}
	if rng == nil {
		return nil, errors.New("random source must not be nil")
	}
	if algorithm == nil {
		return nil, errors.New("algorithm must not be nil")
	}
	if len(members) != config.Evolution.PopSize {
		return nil, fmt.Errorf("got %d members, config pop_size is %d", len(members), config.Evolution.PopSize)
	}

	criterion, ok := StatFunctions[strings.ToLower(config.Evolution.FitnessCriterion)]
	if !ok {
		return nil, fmt.Errorf("invalid fitness_criterion in config: %s", config.Evolution.FitnessCriterion)
	}

	return &Population[I]{
		Config:      config,
		Members:     members,
		Algorithm:   algorithm,
		rng:         rng,
		criterion:   criterion,
		bestFitness: math.Inf(-1),
		bestScore:   math.Inf(-1),
	}, nil
}

// Best returns the fittest member seen across all evaluated generations.
// The boolean is false until the first evaluation has run.
func (p *Population[I]) Best() (I, float64, bool) {
	return p.best, p.bestFitness, p.haveBest
}

// RunGeneration evaluates the current members and, unless a termination
// condition is met, replaces them with the next generation. It returns
// true when the run should stop: either the criterion score reached the
// fitness threshold, or it has not improved for max_stagnation
// generations.
func (p *Population[I]) RunGeneration(evaluate EvaluateFunc[I]) (bool, error) {
	p.Generation++
	genStartTime := time.Now()
	fmt.Printf("****** Generation %d ******\n", p.Generation)

	if err := evaluate(p.Generation, p.Members); err != nil {
		return false, fmt.Errorf("fitness evaluation failed in generation %d: %w", p.Generation, err)
	}

	fitnesses := make([]float64, len(p.Members))
	for i, member := range p.Members {
		fitnesses[i] = member.Fitness()
	}

	// Track the best member seen so far.
	genBest := 0
	for i, f := range fitnesses {
		if f > fitnesses[genBest] {
			genBest = i
		}
	}
	if !p.haveBest || fitnesses[genBest] > p.bestFitness {
		p.best = p.Members[genBest]
		p.bestFitness = fitnesses[genBest]
		p.haveBest = true
		fmt.Printf(" New best member found! Fitness: %.4f\n", p.bestFitness)
	}
	fmt.Printf(" Best of generation %d: %.4f (mean %.4f, stdev %.4f)\n",
		p.Generation, fitnesses[genBest], Mean(fitnesses), Stdev(fitnesses))

	// Criterion score drives both termination checks.
	score := p.criterion(fitnesses)
	if score > p.bestScore {
		p.bestScore = score
		p.lastImprovement = p.Generation
	}

	if !p.Config.Evolution.NoFitnessTermination && score >= p.Config.Evolution.FitnessThreshold {
		fmt.Printf(" Fitness threshold met in generation %d (%s = %.4f).\n",
			p.Generation, p.Config.Evolution.FitnessCriterion, score)
		return true, nil
	}
	if p.Config.Evolution.MaxStagnation > 0 &&
		p.Generation-p.lastImprovement >= p.Config.Evolution.MaxStagnation {
		fmt.Printf(" No %s improvement for %d generations; stopping.\n",
			p.Config.Evolution.FitnessCriterion, p.Config.Evolution.MaxStagnation)
		return true, nil
	}

	next, err := p.Algorithm.Evolve(p.rng, p.Members)
	if err != nil {
		return false, fmt.Errorf("generational step failed in generation %d: %w", p.Generation, err)
	}
	p.Members = next

	fmt.Printf("Generation %d finished in %s\n\n", p.Generation, time.Since(genStartTime))
	return false, nil
}

// Run executes generations until a termination condition is met or
// max_generations is reached, then returns the best member seen.
func (p *Population[I]) Run(evaluate EvaluateFunc[I]) (I, error) {
	for p.Generation < p.Config.Evolution.MaxGenerations {
		done, err := p.RunGeneration(evaluate)
		if err != nil {
			var zero I
			return zero, err
		}
		if done {
			break
		}
	}

	best, _, ok := p.Best()
	if !ok {
		var zero I
		return zero, errors.New("no generations were evaluated")
	}
	return best, nil
}

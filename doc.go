// Package evolve provides a small evolutionary optimizer for populations of
// fixed-topology feed-forward neural networks.
//
// A population of entities implementing the Individual interface is bred
// across generations using fitness-proportionate (roulette-wheel) selection,
// uniform crossover and Gaussian mutation. Each generation fully replaces
// the previous one. The evolve/nn subpackage decodes a flat chromosome into
// a feed-forward network and computes forward propagation.
//
// All randomness flows through a caller-supplied *rand.Rand, so runs are
// reproducible given a fixed seed.
//
// Basic usage:
//
//	// Load configuration
//	config, err := evolve.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	rng := rand.New(rand.NewSource(config.Evolution.Seed))
//
//	// Wire the genetic operators into an algorithm for your individual type.
//	mutation, err := evolve.NewGaussianMutation(config.Mutation.Chance, config.Mutation.Coefficient)
//	if err != nil {
//		log.Fatalf("Error creating mutation: %v", err)
//	}
//	ga := evolve.NewGeneticAlgorithm(
//		evolve.NewRouletteWheelSelection(),
//		evolve.NewUniformCrossover(),
//		mutation,
//		newMyIndividual, // func(*evolve.Chromosome) *myIndividual
//	)
//
//	// Create a population and run it against your fitness function.
//	pop, err := evolve.NewPopulation(config, rng, ga, initialMembers)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//	best, err := pop.Run(evalMembers)
package evolve

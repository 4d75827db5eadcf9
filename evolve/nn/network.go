// Package nn provides the feed-forward phenotype for the evolve package:
// it decodes a flat chromosome into layered weights and biases and computes
// forward propagation.
//
// Chromosome layout is the single compatibility surface between genotype
// and phenotype. Genes are consumed layer by layer, neuron by neuron, each
// neuron contributing its weights (one per input) followed by its bias.
// Network.Chromosome encodes in exactly the same order, so
// FromChromosome(topology, net.Chromosome()) rebuilds an identical network.
package nn

import (
	"fmt"
	"math/rand"

	"github.com/baldhumanity/evolve-go/evolve"
)

// LayerTopology gives the neuron count of one layer. A network topology is
// an ordered list of these, input layer first, with at least two entries.
type LayerTopology struct {
	Neurons int
}

// Neuron holds one bias and one weight per input. Built once from a
// chromosome or a random source and read-only afterwards.
type Neuron struct {
	Bias    float64
	Weights []float64
}

// Layer is an ordered set of neurons sharing the same input vector.
type Layer struct {
	Neurons []Neuron
}

// Network is an ordered sequence of layers.
type Network struct {
	Layers []Layer
}

// validateTopology checks the shared topology preconditions.
func validateTopology(topology []LayerTopology) error {
	if len(topology) < 2 {
		return fmt.Errorf("topology must list at least two layers, got %d", len(topology))
	}
	for i, layer := range topology {
		if layer.Neurons <= 0 {
			return fmt.Errorf("topology layer %d must have a positive neuron count, got %d", i, layer.Neurons)
		}
	}
	return nil
}

// ChromosomeLen returns the gene count a chromosome must have to encode a
// network of the given topology: for each weight layer,
// neurons * (inputs + 1).
func ChromosomeLen(topology []LayerTopology) int {
	total := 0
	for i := 1; i < len(topology); i++ {
		total += topology[i].Neurons * (topology[i-1].Neurons + 1)
	}
	return total
}

// NewRandom builds a network for the given topology with every bias and
// weight drawn uniformly from [-1, 1) off the supplied random source.
// Draws happen neuron by neuron, weights before bias, the same traversal
// order the chromosome codec uses.
func NewRandom(rng *rand.Rand, topology []LayerTopology) (*Network, error) {
	if err := validateTopology(topology); err != nil {
		return nil, err
	}

	layers := make([]Layer, 0, len(topology)-1)
	for i := 1; i < len(topology); i++ {
		inputs := topology[i-1].Neurons
		neurons := make([]Neuron, topology[i].Neurons)
		for n := range neurons {
			weights := make([]float64, inputs)
			for w := range weights {
				weights[w] = rng.Float64()*2.0 - 1.0
			}
			neurons[n] = Neuron{
				Bias:    rng.Float64()*2.0 - 1.0,
				Weights: weights,
			}
		}
		layers = append(layers, Layer{Neurons: neurons})
	}
	return &Network{Layers: layers}, nil
}

// FromChromosome decodes a flat chromosome into a network of the given
// topology. The chromosome length must equal ChromosomeLen(topology);
// a mismatch is a construction error, never silently truncated.
func FromChromosome(topology []LayerTopology, c *evolve.Chromosome) (*Network, error) {
	if err := validateTopology(topology); err != nil {
		return nil, err
	}
	if want := ChromosomeLen(topology); c.Len() != want {
		return nil, fmt.Errorf("chromosome has %d genes, topology requires %d", c.Len(), want)
	}

	genes := c.Genes()
	next := 0

	layers := make([]Layer, 0, len(topology)-1)
	for i := 1; i < len(topology); i++ {
		inputs := topology[i-1].Neurons
		neurons := make([]Neuron, topology[i].Neurons)
		for n := range neurons {
			weights := make([]float64, inputs)
			copy(weights, genes[next:next+inputs])
			next += inputs
			neurons[n] = Neuron{
				Bias:    genes[next],
				Weights: weights,
			}
			next++
		}
		layers = append(layers, Layer{Neurons: neurons})
	}
	return &Network{Layers: layers}, nil
}

// Chromosome flattens the network back into a chromosome, using the same
// traversal order FromChromosome consumes: layer by layer, neuron by
// neuron, weights then bias.
func (net *Network) Chromosome() *evolve.Chromosome {
	genes := make([]float64, 0)
	for _, layer := range net.Layers {
		for _, neuron := range layer.Neurons {
			genes = append(genes, neuron.Weights...)
			genes = append(genes, neuron.Bias)
		}
	}
	return evolve.NewChromosome(genes)
}

// Propagate feeds the input vector through every layer and returns the
// final layer's outputs. The input length must equal the first layer's
// weight count. Propagation holds no state and may be invoked repeatedly.
//
// Every neuron applies output = max(0, bias + dot(input, weights)).
// The rectified-linear activation is applied uniformly, including the
// final layer; there is no distinct output activation.
func (net *Network) Propagate(inputs []float64) ([]float64, error) {
	current := inputs
	for li, layer := range net.Layers {
		outputs := make([]float64, len(layer.Neurons))
		for ni, neuron := range layer.Neurons {
			if len(current) != len(neuron.Weights) {
				return nil, fmt.Errorf("mismatch between input count (%d) and weight count (%d) at layer %d neuron %d",
					len(current), len(neuron.Weights), li, ni)
			}
			sum := neuron.Bias
			for w, weight := range neuron.Weights {
				sum += current[w] * weight
			}
			if sum < 0 {
				sum = 0
			}
			outputs[ni] = sum
		}
		current = outputs
	}
	return current, nil
}

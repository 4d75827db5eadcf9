package evolve

import (
	"fmt"
	"math"
)

// Chromosome is an ordered, fixed-length sequence of float64 genes.
// It is the genetic encoding acted on by the crossover and mutation
// operators; the nn subpackage decodes it into network weights.
// The gene count never changes after construction.
type Chromosome struct {
	genes []float64
}

// NewChromosome creates a Chromosome from a slice of genes.
// The slice is copied, so the caller keeps ownership of its argument.
func NewChromosome(genes []float64) *Chromosome {
	owned := make([]float64, len(genes))
	copy(owned, genes)
	return &Chromosome{genes: owned}
}

// Len returns the number of genes.
func (c *Chromosome) Len() int {
	return len(c.genes)
}

// Gene returns the gene at the given position.
func (c *Chromosome) Gene(i int) float64 {
	return c.genes[i]
}

// Genes returns a copy of the gene sequence, in order.
func (c *Chromosome) Genes() []float64 {
	out := make([]float64, len(c.genes))
	copy(out, c.genes)
	return out
}

// Range calls fn for each gene in order.
func (c *Chromosome) Range(fn func(i int, gene float64)) {
	for i, g := range c.genes {
		fn(i, g)
	}
}

// Update replaces each gene with fn(i, gene), visiting genes in order.
// The chromosome keeps its length; only gene values change.
func (c *Chromosome) Update(fn func(i int, gene float64) float64) {
	for i, g := range c.genes {
		c.genes[i] = fn(i, g)
	}
}

// Copy creates a deep copy of the Chromosome.
func (c *Chromosome) Copy() *Chromosome {
	return NewChromosome(c.genes)
}

// ApproxEqual reports whether two chromosomes have the same length and
// genes that agree within the given absolute tolerance. Operator output
// accumulates float rounding error, so verification uses this rather
// than exact equality.
func (c *Chromosome) ApproxEqual(other *Chromosome, tolerance float64) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i, g := range c.genes {
		if math.Abs(g-other.genes[i]) > tolerance {
			return false
		}
	}
	return true
}

// String returns a short string representation of the Chromosome.
func (c *Chromosome) String() string {
	return fmt.Sprintf("Chromosome(Len: %d)", len(c.genes))
}

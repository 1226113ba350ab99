package data

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// WeightedChoice draws strings according to explicit (value, probability)
// pairs. Values and probs pair by index.
type WeightedChoice struct {
	values []string
	dist   distuv.Categorical
}

func NewWeightedChoice(values []string, probs []float64, src rand.Source) WeightedChoice {
	return WeightedChoice{
		values: values,
		dist:   distuv.NewCategorical(probs, src),
	}
}

func (w WeightedChoice) Draw() string {
	return w.values[int(w.dist.Rand())]
}

// PowerLaw samples [0,1) with density alpha*x^(alpha-1). Lower Alpha piles
// mass near zero.
type PowerLaw struct {
	Alpha float64
	Rnd   *rand.Rand
}

func (p PowerLaw) Rand() float64 {
	return math.Pow(p.Rnd.Float64(), 1/p.Alpha)
}

// ClippedPoisson draws integers from Poisson(lambda) clamped into [Min, Max].
type ClippedPoisson struct {
	Min, Max int64
	dist     distuv.Poisson
}

func NewClippedPoisson(lambda float64, min, max int64, src rand.Source) ClippedPoisson {
	return ClippedPoisson{
		Min:  min,
		Max:  max,
		dist: distuv.Poisson{Lambda: lambda, Src: src},
	}
}

func (c ClippedPoisson) Draw() int64 {
	n := int64(c.dist.Rand())
	if n < c.Min {
		n = c.Min
	}
	if n > c.Max {
		n = c.Max
	}
	return n
}

func randomChoice(items []string, rnd *rand.Rand) string {
	return items[rnd.Intn(len(items))]
}

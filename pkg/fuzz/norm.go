package fuzz

import "math"

// A Norm is a triangular norm: the binary operator combining two truth
// degrees for fuzzy AND. Implementations must be closed over [0, 1].
type Norm interface {
	Evaluate(x float64, y float64) float64
}

// A CoNorm is a triangular conorm: the binary operator for fuzzy OR.
type CoNorm interface {
	Evaluate(x float64, y float64) float64
}

// NormFunc adapts a plain function to the Norm interface.
type NormFunc func(x float64, y float64) float64

func (f NormFunc) Evaluate(x float64, y float64) float64 {
	return f(x, y)
}

// CoNormFunc adapts a plain function to the CoNorm interface.
type CoNormFunc func(x float64, y float64) float64

func (f CoNormFunc) Evaluate(x float64, y float64) float64 {
	return f(x, y)
}

// Norms. Minimum is the default AND.
var (
	Minimum Norm = NormFunc(math.Min)
	Product Norm = NormFunc(func(x, y float64) float64 {
		return x * y
	})
	BoundedDifference Norm = NormFunc(func(x, y float64) float64 {
		return math.Max(0, x+y-1)
	})
)

// CoNorms. Maximum is the default OR.
var (
	Maximum          CoNorm = CoNormFunc(math.Max)
	ProbabilisticSum CoNorm = CoNormFunc(func(x, y float64) float64 {
		return x + y - x*y
	})
	BoundedSum CoNorm = CoNormFunc(func(x, y float64) float64 {
		return math.Min(1, x+y)
	})
)

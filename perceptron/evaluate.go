package perceptron

import "github.com/pkg/errors"

// Number is any numeric type that can be paired with float64 weights.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Evaluate classifies the instance, returning 1 when the weighted sum plus bias is
// strictly positive and 0 otherwise. The instance length must match the weight count.
func (p *Perceptron) Evaluate(instance []float64) (int, error) {
	return EvaluateOf(p, instance)
}

// EvaluateOf is Evaluate over any numeric instance type.
func EvaluateOf[T Number](p *Perceptron, instance []T) (int, error) {
	if len(instance) != len(p.weights) {
		return 0, errors.Wrapf(ErrInvalidArgument, "instance has %d inputs, perceptron has %d weights",
			len(instance), len(p.weights))
	}
	return evaluate(p, instance), nil
}

// evaluate assumes len(instance) == len(p.weights).
func evaluate[T Number](p *Perceptron, instance []T) int {
	var sum float64
	for i, w := range p.weights {
		sum += float64(instance[i]) * w
	}
	sum += p.bias

	// ties classify as 0
	if sum > 0 {
		return 1
	}
	return 0
}

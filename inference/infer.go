// Package inference implements the inference stage of the perceptron classifier
package inference

import "context"

import "github.com/neurlang/perceptron/parallel"
import "github.com/pkg/errors"

// Model classifies one instance into 0 or 1. Evaluate must be safe for concurrent use.
type Model interface {
	Evaluate(instance []float64) (int, error)
}

// BoolInfer classifies one instance as true or false.
func BoolInfer(input []float64, m Model) (bool, error) {
	out, err := m.Evaluate(input)
	if err != nil {
		return false, err
	}
	return out != 0, nil
}

// Infer classifies every instance using up to threads goroutines, 0 meaning one per core.
// The first failing instance aborts the rest.
func Infer(ctx context.Context, m Model, instances [][]float64, threads int) ([]int, error) {
	outputs := make([]int, len(instances))
	err := parallel.ForEachErr(ctx, len(instances), threads, func(_ context.Context, i int) error {
		out, err := m.Evaluate(instances[i])
		if err != nil {
			return errors.Wrapf(err, "instance %d", i)
		}
		outputs[i] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outputs, nil
}

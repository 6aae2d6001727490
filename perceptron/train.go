package perceptron

import "github.com/pkg/errors"

// Train trains the perceptron on a single instance until it is classified as expected.
// An uninitialized perceptron is first initialized to the instance length.
//
// Each sweep visits every weight index, re-evaluates the instance and, when the
// prediction is wrong, moves that weight by learnRate*(expected-predicted)*input.
// Sweeps repeat until one makes no update, or MaxSweeps is reached.
func (p *Perceptron) Train(instance []float64, expected int) error {
	return TrainOf(p, instance, expected)
}

// TrainOf is Train over any numeric instance type.
func TrainOf[T Number](p *Perceptron, instance []T, expected int) error {
	if expected != 0 && expected != 1 {
		return errors.Wrapf(ErrInvalidArgument, "expected output %d is not 0 or 1", expected)
	}
	if !p.initialized {
		if err := p.Initialize(len(instance)); err != nil {
			return err
		}
	}
	if len(instance) != len(p.weights) {
		return errors.Wrapf(ErrInvalidArgument, "instance has %d inputs, perceptron has %d weights",
			len(instance), len(p.weights))
	}

	for sweep := 0; ; sweep++ {
		if p.maxSweeps > 0 && sweep >= p.maxSweeps {
			return errors.Wrapf(ErrNotConverged, "gave up after %d sweeps", sweep)
		}
		var changed bool
		for i := range p.weights {
			predicted := evaluate(p, instance)
			if predicted != expected {
				p.weights[i] -= p.learnRate * float64(predicted-expected) * float64(instance[i])
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
}

// TrainBatch trains the perceptron on every instance/output pair once, in random
// order when shuffle is set. The first failing instance aborts the batch.
func (p *Perceptron) TrainBatch(instances [][]float64, outputs []int, shuffle bool) error {
	return trainBatch(p, instances, outputs, shuffle, nil)
}

// TrainBatchOf is TrainBatch over any numeric instance type.
func TrainBatchOf[T Number](p *Perceptron, instances [][]T, outputs []int, shuffle bool) error {
	return trainBatch(p, instances, outputs, shuffle, nil)
}

func trainBatch[T Number](p *Perceptron, instances [][]T, outputs []int, shuffle bool, visit func(n int)) error {
	if len(instances) != len(outputs) {
		return errors.Wrapf(ErrInvalidArgument, "%d instances but %d outputs", len(instances), len(outputs))
	}
	if err := p.order(len(instances), shuffle); err != nil {
		return err
	}
	for _, n := range p.indices {
		if visit != nil {
			visit(n)
		}
		if err := TrainOf(p, instances[n], outputs[n]); err != nil {
			return errors.Wrapf(err, "instance %d", n)
		}
	}
	return nil
}

// order sizes the shuffle buffer to n and fills it with a permutation of [0, n).
func (p *Perceptron) order(n int, shuffle bool) error {
	if cap(p.indices) < n {
		indices, err := allocate[int](n)
		if err != nil {
			return err
		}
		p.indices = indices
	}
	p.indices = p.indices[:n]
	for i := range p.indices {
		p.indices[i] = i
	}
	if shuffle {
		p.shuffle(n, func(i, j int) { p.indices[i], p.indices[j] = p.indices[j], p.indices[i] })
	}
	return nil
}

package perceptron

import "math/rand"

import "github.com/pkg/errors"

// LearnRate gets the current learn rate.
func (p *Perceptron) LearnRate() float64 {
	return p.learnRate
}

// Bias gets the current bias.
func (p *Perceptron) Bias() float64 {
	return p.bias
}

// Size gets the number of inputs, 0 when uninitialized.
func (p *Perceptron) Size() int {
	if !p.initialized {
		return 0
	}
	return len(p.weights)
}

// IsInitialized reports whether the weights have been initialized.
func (p *Perceptron) IsInitialized() bool {
	return p.initialized
}

// MaxSweeps gets the sweep bound of single instance training, 0 means unbounded.
func (p *Perceptron) MaxSweeps() int {
	return p.maxSweeps
}

// Weight gets the weight of the n-th input.
func (p *Perceptron) Weight(n int) (float64, error) {
	if n < 0 || n >= p.Size() {
		return 0, errors.Wrapf(ErrOutOfRange, "weight %d of %d", n, p.Size())
	}
	return p.weights[n], nil
}

// Weights gets an independent copy of all weights.
func (p *Perceptron) Weights() ([]float64, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	weights, err := allocate[float64](len(p.weights))
	if err != nil {
		return nil, err
	}
	copy(weights, p.weights)
	return weights, nil
}

// SetBias sets the bias.
func (p *Perceptron) SetBias(bias float64) {
	p.bias = bias
}

// SetLearnRate sets the learn rate.
func (p *Perceptron) SetLearnRate(learnRate float64) {
	p.learnRate = learnRate
}

// SetMaxSweeps sets the sweep bound of single instance training. Zero or a
// negative value removes the bound, so training may then loop forever on
// instances it cannot fit.
func (p *Perceptron) SetMaxSweeps(n int) {
	if n < 0 {
		n = 0
	}
	p.maxSweeps = n
}

// SetRand sets the random source used for weight initialization and shuffling.
// A nil source selects the global one.
func (p *Perceptron) SetRand(r *rand.Rand) {
	p.rng = r
}

// SetWeight sets the weight of the n-th input.
func (p *Perceptron) SetWeight(n int, value float64) error {
	if n < 0 || n >= p.Size() {
		return errors.Wrapf(ErrOutOfRange, "weight %d of %d", n, p.Size())
	}
	p.weights[n] = value
	return nil
}

// SetWeights overwrites all weights and reports whether it did so.
// Nothing happens when the number of values differs from the number of stored
// weights. The initialized flag is not changed.
func (p *Perceptron) SetWeights(values []float64) bool {
	if len(values) != len(p.weights) {
		return false
	}
	copy(p.weights, values)
	return true
}

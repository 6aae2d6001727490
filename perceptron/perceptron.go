// Package perceptron implements a single binary linear classifier trained with the
// perceptron update rule and evaluated by a thresholded dot product.
package perceptron

import "math/rand"
import "runtime"

import "github.com/pkg/errors"

// DefaultLearnRate is the learn rate of a freshly constructed Perceptron.
const DefaultLearnRate = 0.4

// DefaultBias is the bias of a freshly constructed Perceptron.
const DefaultBias = -1.0

// DefaultMaxSweeps bounds the sweeps single instance training makes before giving up.
const DefaultMaxSweeps = 10000

// Perceptron evaluates inputs to either 0 or 1 based on learned weights.
// The value returned by Evaluate is random until the perceptron has been trained.
type Perceptron struct {
	weights   []float64
	learnRate float64
	bias      float64

	// indices is the shuffle buffer reused across batch training calls
	indices []int

	initialized bool
	maxSweeps   int
	rng         *rand.Rand
}

// New constructs an uninitialized Perceptron with default learn rate and bias.
func New() *Perceptron {
	return &Perceptron{
		learnRate: DefaultLearnRate,
		bias:      DefaultBias,
		maxSweeps: DefaultMaxSweeps,
	}
}

// NewSized constructs a Perceptron with n randomly initialized weights.
func NewSized(n int) (*Perceptron, error) {
	p := New()
	if err := p.Initialize(n); err != nil {
		return nil, err
	}
	return p, nil
}

// NewWith constructs a Perceptron with n random weights, learn rate and bias.
func NewWith(n int, learnRate, bias float64) (*Perceptron, error) {
	p, err := NewSized(n)
	if err != nil {
		return nil, err
	}
	p.learnRate = learnRate
	p.bias = bias
	return p, nil
}

// allocate makes a slice of length n, reporting failure instead of panicking.
func allocate[T any](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			buf, err = nil, errors.Wrapf(ErrOutOfMemory, "allocating %d entries", n)
		}
	}()
	return make([]T, n), nil
}

// Initialize replaces the weights with n uniform random values in [0, 1).
// On failure the perceptron is left uninitialized with no weights.
func (p *Perceptron) Initialize(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative number of inputs %d", n)
	}
	p.weights = nil
	p.initialized = false

	weights, err := allocate[float64](n)
	if err != nil {
		return err
	}
	for i := range weights {
		weights[i] = p.random()
	}
	p.weights = weights
	p.initialized = true
	return nil
}

func (p *Perceptron) random() float64 {
	if p.rng != nil {
		return p.rng.Float64()
	}
	return rand.Float64()
}

func (p *Perceptron) shuffle(n int, swap func(i, j int)) {
	if p.rng != nil {
		p.rng.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}

// Clone returns a deep copy of the perceptron.
func (p *Perceptron) Clone() (*Perceptron, error) {
	o := new(Perceptron)
	if err := o.CopyFrom(p); err != nil {
		return nil, err
	}
	return o, nil
}

// CopyFrom overwrites p with a deep copy of src. The shuffle buffer is not copied.
// On allocation failure p is left unchanged.
func (p *Perceptron) CopyFrom(src *Perceptron) error {
	if p == src {
		return nil
	}
	var weights []float64
	if src.weights != nil {
		var err error
		weights, err = allocate[float64](len(src.weights))
		if err != nil {
			return err
		}
		copy(weights, src.weights)
	}
	p.weights = weights
	p.initialized = src.initialized
	p.learnRate = src.learnRate
	p.bias = src.bias
	p.maxSweeps = src.maxSweeps
	p.rng = src.rng
	return nil
}

// Move transfers the weights and settings of src to p.
// Afterwards src is uninitialized and holds no weights.
func (p *Perceptron) Move(src *Perceptron) {
	if p == src {
		return
	}
	p.weights, src.weights = src.weights, nil
	p.indices, src.indices = src.indices, nil
	p.initialized, src.initialized = src.initialized, false
	p.learnRate = src.learnRate
	p.bias = src.bias
	p.maxSweeps = src.maxSweeps
	p.rng = src.rng
}

// ClearWeights returns the perceptron to the uninitialized state.
// Despite the name the stored weight values are kept, only the initialized
// flag is reset. The next Train reinitializes the weights.
func (p *Perceptron) ClearWeights() {
	p.initialized = false
}

// Package datasets implements the perceptron dataset types
package datasets

import "math/rand"

import "github.com/pkg/errors"

// ErrInvalidDataset is returned by Validate for a malformed dataset.
var ErrInvalidDataset = errors.New("invalid dataset")

// Sample is one labelled instance.
type Sample interface {
	// Len is the number of features
	Len() int

	// Feature extracts the n-th feature
	Feature(n int) float64

	// Output is the expected label, 0 or 1
	Output() int
}

// Dataslice is an indexed collection of samples.
type Dataslice interface {
	Get(n int) Sample
	Len() int
}

// Dataset is a materialized Dataslice with parallel instances and outputs.
type Dataset struct {
	Instances [][]float64
	Outputs   []int
}

// Materialize copies the samples of d into a Dataset.
func Materialize(d Dataslice) (o Dataset) {
	o.Instances = make([][]float64, d.Len())
	o.Outputs = make([]int, d.Len())
	for i := 0; i < d.Len(); i++ {
		s := d.Get(i)
		o.Instances[i] = make([]float64, s.Len())
		for j := range o.Instances[i] {
			o.Instances[i][j] = s.Feature(j)
		}
		o.Outputs[i] = s.Output()
	}
	return
}

// Len is the number of samples.
func (d Dataset) Len() int {
	return len(d.Instances)
}

// Get gets the n-th sample.
func (d Dataset) Get(n int) Sample {
	return row{d.Instances[n], d.Outputs[n]}
}

// Width is the number of features of the first instance, 0 for an empty dataset.
func (d Dataset) Width() int {
	if len(d.Instances) == 0 {
		return 0
	}
	return len(d.Instances[0])
}

// Validate checks that instances and outputs pair up, every instance has the same
// width and every output is 0 or 1.
func (d Dataset) Validate() error {
	if len(d.Instances) != len(d.Outputs) {
		return errors.Wrapf(ErrInvalidDataset, "%d instances but %d outputs", len(d.Instances), len(d.Outputs))
	}
	width := d.Width()
	for i, in := range d.Instances {
		if len(in) != width {
			return errors.Wrapf(ErrInvalidDataset, "instance %d has %d features, want %d", i, len(in), width)
		}
		if d.Outputs[i] != 0 && d.Outputs[i] != 1 {
			return errors.Wrapf(ErrInvalidDataset, "output %d is %d", i, d.Outputs[i])
		}
	}
	return nil
}

// Subset returns the dataset rows at the given indices. Rows are shared, not copied.
func (d Dataset) Subset(indices []int) (o Dataset) {
	o.Instances = make([][]float64, len(indices))
	o.Outputs = make([]int, len(indices))
	for i, n := range indices {
		o.Instances[i] = d.Instances[n]
		o.Outputs[i] = d.Outputs[n]
	}
	return
}

type row struct {
	instance []float64
	output   int
}

func (r row) Len() int {
	return len(r.instance)
}

func (r row) Feature(n int) float64 {
	return r.instance[n]
}

func (r row) Output() int {
	return r.output
}

// SplittedDataset holds the sample indices of the false set and the true set
type SplittedDataset [2][]int

// SplitDataset splits dataset into a false set and a true set of indices
func SplitDataset(d Dataslice) (o SplittedDataset) {
	for i := 0; i < d.Len(); i++ {
		if d.Get(i).Output() != 0 {
			o[1] = append(o[1], i)
		} else {
			o[0] = append(o[0], i)
		}
	}
	return
}

// BalanceDataset fills the smaller set with random picks of its own samples until
// it matches the bigger set. An empty set stays empty. A nil r uses the global source.
func BalanceDataset(d SplittedDataset, r *rand.Rand) SplittedDataset {
	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}
	for i := range d {
		other := d[1-i]
		if len(d[i]) == 0 {
			continue
		}
		for base := len(d[i]); len(d[i]) < len(other); {
			d[i] = append(d[i], d[i][intn(base)])
		}
	}
	return d
}

// Indices flattens the splitted dataset, false set first
func (d SplittedDataset) Indices() []int {
	o := make([]int, 0, len(d[0])+len(d[1]))
	o = append(o, d[0]...)
	return append(o, d[1]...)
}

package trainer

import "context"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/parallel"
import "github.com/neurlang/perceptron/perceptron"

// EvaluateFunc measures the success rate in percent and fingerprints the predictions.
type EvaluateFunc func(ctx context.Context) (success int, state [32]byte, err error)

// NewEvaluateFunc makes an EvaluateFunc classifying the whole dataset with m.
// An empty dataset is always 100% successful.
func NewEvaluateFunc(m inference.Model, d datasets.Dataslice, threads int) EvaluateFunc {
	set := datasets.Materialize(d)

	return func(ctx context.Context) (int, [32]byte, error) {
		outputs, err := inference.Infer(ctx, m, set.Instances, threads)
		if err != nil {
			return 0, [32]byte{}, err
		}

		h := parallel.NewHasher(len(outputs))
		var correct int
		for i, out := range outputs {
			h.MustPutInt(i, out)
			if out == set.Outputs[i] {
				correct++
			}
		}
		if len(outputs) == 0 {
			return 100, h.Sum(), nil
		}
		return 100 * correct / len(outputs), h.Sum(), nil
	}
}

// Fingerprint hashes the weights and bias of p.
func Fingerprint(p *perceptron.Perceptron) [32]byte {
	// nil when uninitialized
	weights, _ := p.Weights()
	h := parallel.NewHasher(len(weights) + 1)
	for i, w := range weights {
		h.MustPutFloat64(i, w)
	}
	h.MustPutFloat64(len(weights), p.Bias())
	return h.Sum()
}

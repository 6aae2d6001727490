package learning

import "context"
import "math/rand"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/perceptron"
import "github.com/neurlang/perceptron/trainer"

// Training trains a fresh perceptron on d according to the hyperparameters.
// The perceptron is returned even when training stops short of the threshold.
func (h *HyperParameters) Training(ctx context.Context, d datasets.Dataslice) (*perceptron.Perceptron, trainer.Result, error) {
	if err := h.Validate(); err != nil {
		return nil, trainer.Result{}, err
	}
	var set = datasets.Materialize(d)
	if err := set.Validate(); err != nil {
		return nil, trainer.Result{}, err
	}

	var r *rand.Rand
	if h.Seed != 0 {
		r = rand.New(rand.NewSource(h.Seed))
	}
	if h.Balance {
		set = set.Subset(datasets.BalanceDataset(datasets.SplitDataset(set), r).Indices())
	}

	p := perceptron.New()
	p.SetRand(r)
	p.SetLearnRate(h.LearnRate)
	p.SetBias(h.Bias)
	p.SetMaxSweeps(h.MaxSweeps)
	if err := p.Initialize(set.Width()); err != nil {
		return nil, trainer.Result{}, err
	}

	loop := trainer.Loop{
		Epochs:    h.Epochs,
		Threshold: h.Threshold,
		Shuffle:   h.Shuffle,
		Threads:   h.Threads,
		Logger:    h.Logger(),
	}
	res, err := loop.Run(ctx, p, set)
	return p, res, err
}

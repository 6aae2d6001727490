package trainer

import "context"
import "fmt"
import "log/slog"

import "github.com/google/uuid"
import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/logging"
import "github.com/neurlang/perceptron/parallel"
import "github.com/neurlang/perceptron/perceptron"
import "github.com/pkg/errors"

// DefaultEpochs is the epoch limit used when Loop.Epochs is zero.
const DefaultEpochs = 100

// ErrStuck is returned when an epoch reproduces weights already seen at the same success rate.
var ErrStuck = errors.New("training stuck in a local minimum")

// ErrEpochs is returned when the epoch limit is reached below the threshold.
var ErrEpochs = errors.New("epoch limit reached")

// Loop configures a training run.
type Loop struct {
	Epochs    int  // epoch limit, DefaultEpochs when zero
	Threshold int  // success rate in percent that ends training, 100 when zero
	Shuffle   bool // shuffle the dataset every epoch
	Threads   int  // evaluation goroutines, one per core when zero

	Logger *slog.Logger
	RunID  string // random when empty
}

// Result summarizes a training run.
type Result struct {
	RunID        string
	Epochs       int
	Success      int
	State        [32]byte
	NotConverged int // epochs cut short by an instance hitting the sweep bound
}

// Run trains p on d epoch by epoch until the success rate reaches the threshold.
// The returned Result is valid even when an error is returned.
func (l Loop) Run(ctx context.Context, p *perceptron.Perceptron, d datasets.Dataset) (res Result, err error) {
	res.RunID = l.RunID
	if res.RunID == "" {
		res.RunID = uuid.NewString()
	}
	if err = d.Validate(); err != nil {
		return res, err
	}
	epochs := l.Epochs
	if epochs <= 0 {
		epochs = DefaultEpochs
	}
	threshold := l.Threshold
	if threshold <= 0 || threshold > 100 {
		threshold = 100
	}
	logger := l.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.With("run", res.RunID)

	var evaluate = NewEvaluateFunc(p, d, l.Threads)
	var seen = parallel.NewStateSet()

	logger.Info("training", "samples", d.Len(), "inputs", d.Width(), "epochs", epochs, "threshold", threshold)

	for res.Epochs < epochs {
		if err = ctx.Err(); err != nil {
			return res, err
		}
		res.Epochs++

		err = p.TrainBatch(d.Instances, d.Outputs, l.Shuffle)
		if errors.Is(err, perceptron.ErrNotConverged) {
			res.NotConverged++
			logger.Warn("instance did not converge", "epoch", res.Epochs, "err", err)
		} else if err != nil {
			return res, errors.Wrapf(err, "epoch %d", res.Epochs)
		}

		res.Success, res.State, err = evaluate(ctx)
		if err != nil {
			return res, errors.Wrapf(err, "evaluating epoch %d", res.Epochs)
		}
		logger.Debug("epoch", "epoch", res.Epochs, "success", res.Success, "state", fmt.Sprintf("%x", res.State[:4]))

		if res.Success >= threshold {
			logger.Info("trained", "epochs", res.Epochs, "success", res.Success)
			return res, nil
		}
		if !seen.Insert(Fingerprint(p), res.Success) {
			logger.Error("stuck", "epoch", res.Epochs, "success", res.Success)
			return res, errors.Wrapf(ErrStuck, "epoch %d at %d%%", res.Epochs, res.Success)
		}
	}

	logger.Error("epoch limit reached", "epochs", res.Epochs, "success", res.Success)
	return res, errors.Wrapf(ErrEpochs, "%d epochs at %d%%", res.Epochs, res.Success)
}

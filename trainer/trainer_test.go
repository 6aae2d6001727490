package trainer

import "bytes"
import "context"
import "log/slog"
import "math/rand"
import "testing"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/datasets/logicgate"
import "github.com/neurlang/perceptron/logging"
import "github.com/neurlang/perceptron/perceptron"
import "github.com/pkg/errors"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func seeded(seed int64) *perceptron.Perceptron {
	p := perceptron.New()
	p.SetRand(rand.New(rand.NewSource(seed)))
	return p
}

func TestEvaluateFunc(t *testing.T) {
	p, err := perceptron.NewWith(2, 0.4, -0.5)
	require.NoError(t, err)
	require.True(t, p.SetWeights([]float64{1, 1}))

	or, _, err := NewEvaluateFunc(p, logicgate.OR, 2)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, or)

	and, state, err := NewEvaluateFunc(p, logicgate.AND, 2)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, and)

	// the fingerprint covers predictions only, not the expected outputs
	_, other, err := NewEvaluateFunc(p, logicgate.NOR, 2)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, state, other, "same predictions, same fingerprint")

	empty, _, err := NewEvaluateFunc(p, datasets.Dataset{}, 1)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, empty)
}

func TestFingerprint(t *testing.T) {
	p, err := perceptron.NewSized(3)
	require.NoError(t, err)
	q, err := p.Clone()
	require.NoError(t, err)
	assert.Equal(t, Fingerprint(p), Fingerprint(q))

	q.SetBias(q.Bias() + 1)
	assert.NotEqual(t, Fingerprint(p), Fingerprint(q))

	assert.NotPanics(t, func() { Fingerprint(perceptron.New()) })
}

func TestLoopLearnsOr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewCLIHandler(&buf, slog.LevelDebug).NoColor())

	p := seeded(7)
	res, err := Loop{Epochs: 20, Shuffle: true, Logger: logger, RunID: "or"}.
		Run(context.Background(), p, datasets.Materialize(logicgate.OR))
	require.NoError(t, err)
	assert.Equal(t, "or", res.RunID)
	assert.Equal(t, 100, res.Success)
	assert.Equal(t, 0, res.NotConverged)
	assert.LessOrEqual(t, res.Epochs, 20)
	assert.Contains(t, buf.String(), "trained: run=or")
}

func TestLoopXorNeverSucceeds(t *testing.T) {
	p := seeded(11)
	res, err := Loop{Epochs: 30}.Run(context.Background(), p, datasets.Materialize(logicgate.XOR))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStuck) || errors.Is(err, ErrEpochs), "got %v", err)
	assert.Less(t, res.Success, 100)
	assert.NotEmpty(t, res.RunID)
}

func TestLoopCountsNotConverged(t *testing.T) {
	// with a negative bias no weight can make the all-zero row output 1
	p := seeded(3)
	p.SetMaxSweeps(3)
	res, err := Loop{Epochs: 5}.Run(context.Background(), p, datasets.Materialize(logicgate.NAND))
	require.Error(t, err)
	assert.Greater(t, res.NotConverged, 0)
}

func TestLoopErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Loop{}.Run(ctx, perceptron.New(), datasets.Materialize(logicgate.OR))
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)

	bad := datasets.Dataset{Instances: [][]float64{{0, 1}}, Outputs: []int{3}}
	_, err = Loop{}.Run(context.Background(), perceptron.New(), bad)
	assert.True(t, errors.Is(err, datasets.ErrInvalidDataset), "got %v", err)

	p, err := perceptron.NewSized(3)
	require.NoError(t, err)
	_, err = Loop{}.Run(context.Background(), p, datasets.Materialize(logicgate.OR))
	assert.True(t, errors.Is(err, perceptron.ErrInvalidArgument), "got %v", err)
}

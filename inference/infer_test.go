package inference

import "context"
import "testing"

import "github.com/neurlang/perceptron/perceptron"
import "github.com/pkg/errors"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func orPerceptron(t *testing.T) *perceptron.Perceptron {
	p, err := perceptron.NewWith(2, 0.4, -0.5)
	require.NoError(t, err)
	require.True(t, p.SetWeights([]float64{1, 1}))
	return p
}

func TestBoolInfer(t *testing.T) {
	p := orPerceptron(t)

	ok, err := BoolInfer([]float64{0, 1}, p)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = BoolInfer([]float64{0, 0}, p)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = BoolInfer([]float64{0}, p)
	assert.True(t, errors.Is(err, perceptron.ErrInvalidArgument))
}

func TestInfer(t *testing.T) {
	p := orPerceptron(t)
	instances := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

	for _, threads := range []int{0, 1, 3} {
		out, err := Infer(context.Background(), p, instances, threads)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 1, 1}, out)
	}

	_, err := Infer(context.Background(), p, [][]float64{{0, 0}, {1}}, 2)
	assert.True(t, errors.Is(err, perceptron.ErrInvalidArgument))

	out, err := Infer(context.Background(), p, nil, 2)
	require.NoError(t, err)
	assert.Empty(t, out)
}

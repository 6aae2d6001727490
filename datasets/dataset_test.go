package datasets

import "math/rand"
import "testing"

import "github.com/pkg/errors"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		dataset Dataset
		wantErr bool
	}{
		{"empty", Dataset{}, false},
		{"valid", Dataset{[][]float64{{0, 1}, {1, 1}}, []int{0, 1}}, false},
		{"length mismatch", Dataset{[][]float64{{0, 1}}, []int{0, 1}}, true},
		{"ragged", Dataset{[][]float64{{0, 1}, {1}}, []int{0, 1}}, true},
		{"label", Dataset{[][]float64{{0, 1}}, []int{2}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dataset.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidDataset), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaterialize(t *testing.T) {
	d := Dataset{[][]float64{{0.5, 1}, {1, 2}}, []int{1, 0}}
	m := Materialize(d)
	assert.Equal(t, d, m)

	m.Instances[0][0] = 7
	assert.Equal(t, 0.5, d.Instances[0][0])
	assert.Equal(t, 2, m.Width())
}

func TestSplitAndBalance(t *testing.T) {
	d := Dataset{
		Instances: [][]float64{{0}, {1}, {2}, {3}, {4}},
		Outputs:   []int{0, 0, 0, 0, 1},
	}
	s := SplitDataset(d)
	assert.Equal(t, []int{0, 1, 2, 3}, s[0])
	assert.Equal(t, []int{4}, s[1])

	b := BalanceDataset(s, rand.New(rand.NewSource(3)))
	require.Len(t, b[0], 4)
	require.Len(t, b[1], 4)
	for _, n := range b[1] {
		assert.Equal(t, 4, n)
	}
	assert.Len(t, b.Indices(), 8)

	sub := d.Subset(b.Indices())
	assert.Equal(t, 8, sub.Len())
	assert.Equal(t, 1, sub.Get(7).Output())
}

func TestBalanceKeepsEmptySet(t *testing.T) {
	s := SplittedDataset{{0, 1}, nil}
	b := BalanceDataset(s, nil)
	assert.Len(t, b[0], 2)
	assert.Empty(t, b[1])
}

package gaussjordan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/gaussjordan"
	"github.com/katalvlaran/matcalc/matrix"
)

func TestReduce_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		aug      [][]float64
		kind     gaussjordan.Kind
		rank     int
		solution []float64
		free     []int
	}{
		{
			name:     "unique",
			aug:      [][]float64{{1, 1, 2}, {1, -1, 0}},
			kind:     gaussjordan.Unique,
			rank:     2,
			solution: []float64{1, 1},
		},
		{
			name:     "identity system",
			aug:      [][]float64{{1, 0, 0, 3}, {0, 1, 0, 4}, {0, 0, 1, 5}},
			kind:     gaussjordan.Unique,
			rank:     3,
			solution: []float64{3, 4, 5},
		},
		{
			name:     "overdetermined consistent",
			aug:      [][]float64{{1, 0, 1}, {0, 1, 2}, {1, 1, 3}},
			kind:     gaussjordan.Unique,
			rank:     2,
			solution: []float64{1, 2},
		},
		{
			name: "dependent rows",
			aug:  [][]float64{{1, 1, 2}, {2, 2, 4}},
			kind: gaussjordan.Infinite,
			rank: 1,
			free: []int{1},
		},
		{
			name: "underdetermined",
			aug:  [][]float64{{1, 2, 3, 4}, {0, 1, 1, 1}},
			kind: gaussjordan.Infinite,
			rank: 2,
			free: []int{2},
		},
		{
			name: "parallel lines",
			aug:  [][]float64{{1, 1, 2}, {1, 1, 3}},
			kind: gaussjordan.Inconsistent,
			rank: 1,
			free: []int{1},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, err := gaussjordan.Reduce(mustRows(t, tc.aug))
			require.NoError(t, err)
			assert.Equal(t, tc.kind, res.Kind)
			assert.Equal(t, tc.rank, res.Rank())
			assert.Equal(t, tc.free, res.Free())
			if tc.solution == nil {
				assert.Nil(t, res.Solution)
				return
			}
			assert.InDeltaSlice(t, tc.solution, res.Solution, 1e-12)
		})
	}
}

func TestReduce_RREFShape(t *testing.T) {
	res, err := gaussjordan.Reduce(mustRows(t, [][]float64{{1, 1, 2}, {2, 2, 4}}))
	require.NoError(t, err)

	require.Equal(t, []int{0}, res.Pivots)
	require.Equal(t, [][]float64{{1, 1, 2}, {0, 0, 0}}, res.RREF.ToRows())
	require.Equal(t, 2, res.Unknowns())
}

func TestReduce_InputUntouched(t *testing.T) {
	rows := [][]float64{{0, 2, 4}, {3, 1, 5}}
	aug := mustRows(t, rows)

	res, err := gaussjordan.Reduce(hide{aug})
	require.NoError(t, err)
	require.Equal(t, gaussjordan.Unique, res.Kind)
	require.InDeltaSlice(t, []float64{1, 2}, res.Solution, 1e-12)
	require.Equal(t, rows, aug.ToRows())
}

func TestReduce_Errors(t *testing.T) {
	_, err := gaussjordan.Reduce(mustRows(t, [][]float64{{1}, {2}}))
	require.ErrorIs(t, err, gaussjordan.ErrDimension)

	_, err = gaussjordan.Reduce(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "unique", gaussjordan.Unique.String())
	assert.Equal(t, "infinite", gaussjordan.Infinite.String())
	assert.Equal(t, "inconsistent", gaussjordan.Inconsistent.String())
	assert.Equal(t, "Kind(9)", gaussjordan.Kind(9).String())
}

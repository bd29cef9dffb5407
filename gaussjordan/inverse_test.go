package gaussjordan_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/gaussjordan"
	"github.com/katalvlaran/matcalc/matrix"
)

func TestInverse_Diagonal(t *testing.T) {
	inv, err := gaussjordan.Inverse(mustRows(t, [][]float64{{1, 0}, {0, 2}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 0.5}}, inv.ToRows())
}

func TestInverse_Known(t *testing.T) {
	inv, err := gaussjordan.Inverse(mustRows(t, [][]float64{{4, 7}, {2, 6}}))
	require.NoError(t, err)

	want := mustRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	ok, err := matrix.AllClose(inv, want, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok, "got\n%v", inv)
}

// TestInverse_IdentityExact: I⁻¹ is I with no drift at all.
func TestInverse_IdentityExact(t *testing.T) {
	for n := 1; n <= 6; n++ {
		I, err := matrix.NewIdentity(n)
		require.NoError(t, err)

		inv, err := gaussjordan.Inverse(I)
		require.NoError(t, err)
		require.Equal(t, I.ToRows(), inv.ToRows(), "n=%d", n)
	}
}

func TestInverse_Singular(t *testing.T) {
	for _, rows := range [][][]float64{
		{{1, 2}, {2, 4}},
		{{1, 2}, {0, 0}},
	} {
		inv, err := gaussjordan.Inverse(mustRows(t, rows))
		require.Nil(t, inv)
		require.ErrorIs(t, err, gaussjordan.ErrSingular)

		var se *gaussjordan.SingularError
		require.True(t, errors.As(err, &se))
		require.Equal(t, "Inverse", se.Op)
	}
}

func TestInverse_NonSquare(t *testing.T) {
	_, err := gaussjordan.Inverse(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, gaussjordan.ErrDimension)
}

// TestInverse_RoundTrip checks A·A⁻¹ ≈ I and A⁻¹·A ≈ I.
func TestInverse_RoundTrip(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := diagDominant(t, n, int64(n))
			rows := A.ToRows()

			inv, err := gaussjordan.Inverse(A)
			require.NoError(t, err)
			require.Equal(t, rows, A.ToRows(), "input must not be mutated")

			I, err := matrix.NewIdentity(n)
			require.NoError(t, err)
			for _, pair := range [][2]matrix.Matrix{{A, inv}, {inv, A}} {
				P, err := matrix.Mul(pair[0], pair[1])
				require.NoError(t, err)
				ok, err := matrix.AllClose(P, I, 0, 1e-9*maxAbs(A))
				require.NoError(t, err)
				require.True(t, ok, "product\n%v", P)
			}
		})
	}
}

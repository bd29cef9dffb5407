package gaussjordan

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matcalc/matrix"
)

// workspace is the transient augmented matrix of one call. Rows are separate
// slices so a pivot swap is a pointer swap.
type workspace struct {
	rows [][]float64
}

// load copies m into a fresh workspace, rejecting non-finite entries.
// m must be non-nil.
func load(m matrix.Matrix) (*workspace, error) {
	r, c := m.Rows(), m.Cols()
	rows := make([][]float64, r)
	var v float64
	var err error
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if !isFinite(v) {
				return nil, fmt.Errorf("value at (%d,%d): %w", i, j, matrix.ErrNaNInf)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return &workspace{rows: rows}, nil
}

// pivotRow returns the row index in [from, len(rows)) with the largest |rows[i][col]|
// and the value found there. Ties keep the lowest index.
func (w *workspace) pivotRow(col, from int) (int, float64) {
	best := from
	bestAbs := math.Abs(w.rows[from][col])
	for i := from + 1; i < len(w.rows); i++ {
		if a := math.Abs(w.rows[i][col]); a > bestAbs {
			best, bestAbs = i, a
		}
	}

	return best, w.rows[best][col]
}

func (w *workspace) swap(i, j int) {
	if i != j {
		w.rows[i], w.rows[j] = w.rows[j], w.rows[i]
	}
}

// normalize divides row k by its entry in col so that entry becomes exactly 1.
func (w *workspace) normalize(k, col int) {
	row := w.rows[k]
	p := row[col]
	if p == 1 {
		return
	}
	for j := range row {
		row[j] /= p
	}
	row[col] = 1
}

// eliminate zeroes column col in every row except k by subtracting multiples of row k.
// Row k must already be normalized.
func (w *workspace) eliminate(k, col int) {
	pivot := w.rows[k]
	for i, row := range w.rows {
		if i == k {
			continue
		}
		f := row[col]
		if f == 0 {
			continue
		}
		for j := range row {
			row[j] -= f * pivot[j]
		}
		row[col] = 0
	}
}

// snap replaces entries with |v| ≤ eps by 0 so later scans see clean zeros.
func (w *workspace) snap(eps float64) {
	for _, row := range w.rows {
		for j, v := range row {
			if math.Abs(v) <= eps {
				row[j] = 0
			}
		}
	}
}

// gaussJordan reduces the leading n×n block to the identity, carrying every
// trailing column along. A pivot with |p| ≤ eps aborts with *SingularError.
func (w *workspace) gaussJordan(op string, n int, eps float64) error {
	for k := 0; k < n; k++ {
		p, pv := w.pivotRow(k, k)
		if math.Abs(pv) <= eps {
			return &SingularError{Op: op, Column: k, Pivot: pv}
		}
		w.swap(p, k)
		w.normalize(k, k)
		w.eliminate(k, k)
	}

	return nil
}

// column reads column j top to bottom.
func (w *workspace) column(j int) []float64 {
	out := make([]float64, len(w.rows))
	for i, row := range w.rows {
		out[i] = row[j]
	}

	return out
}

// toDense copies the whole workspace into a new *matrix.Dense.
// Non-finite entries (overflow during elimination) are rejected.
func (w *workspace) toDense() (*matrix.Dense, error) {
	return matrix.NewFromRows(w.rows)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

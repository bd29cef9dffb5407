package gaussjordan

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matcalc/matrix"
)

const opReduce = "Reduce"

// Kind classifies the solution set of an augmented system.
type Kind int

const (
	// Unique means every unknown is a pivot variable and the system is consistent.
	Unique Kind = iota
	// Infinite means the system is consistent with at least one free variable.
	Infinite
	// Inconsistent means some row reduces to 0 = c with c ≠ 0.
	Inconsistent
)

func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	case Inconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Reduction is the outcome of Reduce.
type Reduction struct {
	// RREF is the reduced row-echelon form of the augmented input.
	RREF *matrix.Dense
	// Pivots lists the pivot column of each leading row, in row order.
	Pivots []int
	// Kind classifies the solution set.
	Kind Kind
	// Solution holds one value per unknown when Kind == Unique; nil otherwise.
	Solution []float64
}

// Rank is the number of pivot rows.
func (r *Reduction) Rank() int { return len(r.Pivots) }

// Unknowns is the number of coefficient columns.
func (r *Reduction) Unknowns() int { return r.RREF.Cols() - 1 }

// Free returns the coefficient columns without a pivot, ascending.
func (r *Reduction) Free() []int {
	isPivot := make([]bool, r.Unknowns())
	for _, p := range r.Pivots {
		isPivot[p] = true
	}
	var free []int
	for j, ok := range isPivot {
		if !ok {
			free = append(free, j)
		}
	}

	return free
}

// Reduce brings an augmented matrix [A | b] of any shape to reduced row-echelon
// form and classifies its solution set. The last column is the right-hand side.
//
// Implementation:
//   - Stage 1: validate aug (non-nil, at least one coefficient column).
//   - Stage 2: for each row r, advance the lead column until some row ≥ r holds
//     an entry with |v| > eps there (largest wins); swap, normalize, eliminate,
//     then snap entries with |v| ≤ eps to 0.
//   - Stage 3: classify: a row 0 = c (c ≠ 0) → Inconsistent; rank < unknowns →
//     Infinite; otherwise Unique and the solution is read from the pivot rows.
//
// Unlike Solve, a singular coefficient block is not an error: it is reported
// through Kind.
//
// Errors: matrix.ErrNilMatrix, ErrDimension (fewer than two columns), matrix.ErrNaNInf.
func Reduce(aug matrix.Matrix, opts ...Option) (*Reduction, error) {
	if err := matrix.ValidateNotNil(aug); err != nil {
		return nil, engineErrorf(opReduce, err)
	}
	if aug.Cols() < 2 {
		return nil, engineErrorf(opReduce, fmt.Errorf("%d column(s), want coefficients plus rhs: %w", aug.Cols(), ErrDimension))
	}
	o := NewOptions(opts...)

	w, err := load(aug)
	if err != nil {
		return nil, engineErrorf(opReduce, err)
	}

	rows, unknowns := aug.Rows(), aug.Cols()-1
	pivots := make([]int, 0, min(rows, unknowns))
	lead := 0
	for r := 0; r < rows && lead < unknowns; r++ {
		p, found := -1, false
		for ; lead < unknowns; lead++ {
			var pv float64
			p, pv = w.pivotRow(lead, r)
			if math.Abs(pv) > o.eps {
				found = true
				break
			}
		}
		if !found {
			break
		}
		w.swap(p, r)
		w.normalize(r, lead)
		w.eliminate(r, lead)
		w.snap(o.eps)
		pivots = append(pivots, lead)
		lead++
	}

	rref, err := w.toDense()
	if err != nil {
		return nil, engineErrorf(opReduce, err)
	}
	res := &Reduction{RREF: rref, Pivots: pivots}

	switch {
	case w.inconsistent(unknowns, o.eps):
		res.Kind = Inconsistent
	case len(pivots) < unknowns:
		res.Kind = Infinite
	default:
		res.Kind = Unique
		res.Solution = make([]float64, unknowns)
		for i, col := range pivots {
			res.Solution[col] = w.rows[i][unknowns]
		}
	}

	return res, nil
}

// inconsistent reports whether some row reads 0 = c with |c| > eps.
func (w *workspace) inconsistent(unknowns int, eps float64) bool {
	for _, row := range w.rows {
		zero := true
		for j := 0; j < unknowns; j++ {
			if math.Abs(row[j]) > eps {
				zero = false
				break
			}
		}
		if zero && math.Abs(row[unknowns]) > eps {
			return true
		}
	}

	return false
}

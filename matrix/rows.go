// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

const opFromRows = "NewFromRows"

// NewFromRows builds a *Dense from row-wise data, copying every value.
//
// Implementation:
//   - Stage 1: reject empty input (no rows, or an empty first row).
//   - Stage 2: scan every row; collect ALL ragged-row and non-finite violations.
//   - Stage 3: allocate and copy in row-major order.
//
// Behavior highlights:
//   - Validation errors are aggregated so a caller can report every bad cell
//     at once; errors.Is still matches each underlying sentinel.
//   - The returned matrix carries the resolved NaN/Inf policy.
//
// Errors:
//   - ErrInvalidDimensions, ErrRaggedRows (wraps ErrDimensionMismatch), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}

	r, c := len(rows), len(rows[0])
	var merr *multierror.Error
	for i, row := range rows {
		if len(row) != c {
			merr = multierror.Append(merr, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrRaggedRows))
			continue
		}
		if !o.validateNaNInf {
			continue
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				merr = multierror.Append(merr, fmt.Errorf("value at (%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	m.validateNaNInf = o.validateNaNInf
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// SPDX-License-Identifier: MIT

// Package matrixio reads matrix documents: small YAML files that carry a
// coefficient matrix with an optional right-hand side, or a block of equations.
//
//	matrix:
//	  - [2, 1]
//	  - [1, 1]
//	rhs: [3, 2]
//
// or
//
//	equations: |
//	  2x + y = 3
//	  x + y = 2
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/parse"
)

// ErrInvalidDocument is the root of every decode and validation failure.
var ErrInvalidDocument = errors.New("matrixio: invalid document")

// Document is one decoded matrix document. Exactly one of Matrix or Equations is set.
type Document struct {
	Matrix    [][]float64 `yaml:"matrix,omitempty"`
	RHS       []float64   `yaml:"rhs,omitempty"`
	Equations string      `yaml:"equations,omitempty"`
}

// Decode reads a single YAML document from r and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}

		return nil, fmt.Errorf("%w: decoding: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load opens path and decodes it.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading matrix document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Validate reports every structural problem of d at once.
func (d *Document) Validate() error {
	var merr *multierror.Error

	hasMatrix, hasEquations := len(d.Matrix) > 0, d.Equations != ""
	switch {
	case !hasMatrix && !hasEquations:
		merr = multierror.Append(merr, errors.New("one of matrix or equations is required"))
	case hasMatrix && hasEquations:
		merr = multierror.Append(merr, errors.New("matrix and equations are mutually exclusive"))
	}
	if hasEquations && len(d.RHS) > 0 {
		merr = multierror.Append(merr, errors.New("rhs is only valid together with matrix"))
	}

	if hasMatrix {
		width := len(d.Matrix[0])
		if width == 0 {
			merr = multierror.Append(merr, errors.New("matrix row 0 is empty"))
		}
		for i, row := range d.Matrix[1:] {
			if len(row) != width {
				merr = multierror.Append(merr, fmt.Errorf("matrix row %d has %d values, want %d", i+1, len(row), width))
			}
		}
		if len(d.RHS) > 0 && len(d.RHS) != len(d.Matrix) {
			merr = multierror.Append(merr, fmt.Errorf("rhs has %d values, matrix has %d rows", len(d.RHS), len(d.Matrix)))
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return nil
}

// System resolves d into a linear system.
// Equations are parsed; a matrix with rhs is joined into [A | b]; a matrix
// without rhs is taken as already augmented. Numeric systems get names x1..xn.
func (d *Document) System() (*parse.System, error) {
	if d.Equations != "" {
		return parse.Equations(d.Equations)
	}
	if len(d.RHS) == 0 {
		return parse.NewSystem(d.Matrix)
	}

	aug := make([][]float64, len(d.Matrix))
	for i, row := range d.Matrix {
		aug[i] = append(append(make([]float64, 0, len(row)+1), row...), d.RHS[i])
	}

	return parse.NewSystem(aug)
}

// Dense returns the coefficient matrix: Matrix when present, otherwise the
// coefficient block of the parsed equations.
func (d *Document) Dense() (*matrix.Dense, error) {
	rows := d.Matrix
	if d.Equations != "" {
		sys, err := parse.Equations(d.Equations)
		if err != nil {
			return nil, err
		}
		rows = sys.Coefficients()
	}

	return matrix.NewFromRows(rows)
}

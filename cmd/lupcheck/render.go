// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lupkit/matrix"
)

// report is the result of one command in every output format.
type report struct {
	Command     string      `yaml:"command"`
	N           int         `yaml:"n"`
	Value       *float64    `yaml:"value,omitempty"`
	MaxResidual *float64    `yaml:"max_residual,omitempty"`
	Matrix      [][]float64 `yaml:"matrix,omitempty"`
	Vector      []float64   `yaml:"vector,omitempty"`

	dense *matrix.Dense
}

// setMatrix attaches d both as rows (yaml) and as a Dense (text, latex).
func (r *report) setMatrix(d *matrix.Dense) {
	rows, cols := d.Shape()
	raw := d.RawCopy()
	r.Matrix = make([][]float64, rows)
	for i := range r.Matrix {
		r.Matrix[i] = raw[i*cols : (i+1)*cols : (i+1)*cols]
	}
	r.dense = d
}

// emit writes r to the configured output.
func (st *state) emit(r report) error {
	switch st.cfg.Output {
	case outputYAML:
		enc := yaml.NewEncoder(st.out)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	case outputLaTeX:
		return st.emitLaTeX(r)
	default:
		return st.emitText(r)
	}
}

func (st *state) emitText(r report) error {
	if r.Value != nil {
		fmt.Fprintln(st.out, strconv.FormatFloat(*r.Value, 'g', -1, 64))
	}
	if r.MaxResidual != nil {
		fmt.Fprintf(st.out, "max residual: %g\n", *r.MaxResidual)
	}
	if r.dense != nil {
		fmt.Fprint(st.out, r.dense.String())
	}
	if r.Vector != nil {
		fmt.Fprintln(st.out, r.Vector)
	}

	return nil
}

func (st *state) emitLaTeX(r report) error {
	prec := st.cfg.Precision
	if r.Value != nil {
		fmt.Fprintln(st.out, strconv.FormatFloat(*r.Value, 'g', -1, 64))
	}
	if r.MaxResidual != nil {
		fmt.Fprintf(st.out, "max residual: %g\n", *r.MaxResidual)
	}
	if r.dense != nil {
		s, err := matrix.FormatLaTeX(r.dense, prec)
		if err != nil {
			return err
		}
		fmt.Fprintln(st.out, s)
	}
	if r.Vector != nil {
		col, err := matrix.NewDenseFrom(len(r.Vector), 1, r.Vector, matrix.WithNoValidateNaNInf())
		if err != nil {
			return err
		}
		s, err := matrix.FormatLaTeX(col, prec)
		if err != nil {
			return err
		}
		fmt.Fprintln(st.out, s)
	}

	return nil
}

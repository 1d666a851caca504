// SPDX-License-Identifier: MIT

package main

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lupkit/matrix"
)

const (
	defaultSelfcheckN   = 200
	defaultSeed         = 1
	defaultMaxResidual  = 1e-8
	selfcheckMaxDisplay = 100
)

// selfcheckCmd inverts a random matrix, multiplies it back and reports
// det(A·A⁻¹) together with the largest deviation from the identity.
func selfcheckCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Invert a random matrix and verify A·A⁻¹ ≈ I.",
		Long: `Builds an n×n matrix with entries 1+2(1-u/2), u uniform in [0,1),
inverts it, multiplies it by the original and reports det(A·A⁻¹) and the
maximum |A·A⁻¹ - I| entry. Fails when that residual exceeds --max-residual.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.selfcheck(cmd)
		},
	}
	flags := cmd.Flags()
	flags.Int("n", defaultSelfcheckN, "Matrix dimension")
	flags.Int64("seed", defaultSeed, "Random seed")
	flags.Float64("max-residual", defaultMaxResidual, "Largest tolerated |A·A⁻¹ - I| entry")
	flags.Bool("show", false, "Include A·A⁻¹ in the output (n <= 100)")

	return cmd
}

func (st *state) selfcheck(cmd *cobra.Command) error {
	n, seed := st.cfg.N, st.cfg.Seed
	if n <= 0 {
		return errors.Errorf("n must be > 0, got %d", n)
	}
	a, err := randomMatrix(n, seed)
	if err != nil {
		return err
	}
	st.log.Debug("generated matrix", zap.Int("n", n), zap.Int64("seed", seed))

	start := time.Now()
	inv, err := matrix.Inverse(a, st.cfg.options()...)
	if err != nil {
		return err
	}
	prod, err := matrix.Mul(a, inv)
	if err != nil {
		return err
	}
	det, err := matrix.Determinant(prod, st.cfg.options()...)
	if err != nil {
		return err
	}
	at, worst, err := matrix.MaxIdentityResidual(prod)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st.log.Info("selfcheck finished",
		zap.Int("n", n),
		zap.Int64("seed", seed),
		zap.Float64("det", det),
		zap.Float64("maxResidual", worst),
		zap.Float64("pivotTol", matrix.NewMatrixOptions(st.cfg.options()...).PivotTolerance()),
		zap.Int("row", at/n),
		zap.Int("col", at%n),
		zap.Duration("elapsed", elapsed),
	)

	rep := report{Command: cmd.Name(), N: n, Value: &det, MaxResidual: &worst}
	if show, _ := cmd.Flags().GetBool("show"); show && n <= selfcheckMaxDisplay {
		rep.setMatrix(prod)
	}
	if err = st.emit(rep); err != nil {
		return err
	}
	if !(worst <= st.cfg.MaxResidual) {
		st.log.Warn("residual above threshold", zap.Float64("maxResidual", worst), zap.Float64("limit", st.cfg.MaxResidual))
		return errors.Errorf("max residual %g at (%d,%d) exceeds %g", worst, at/n, at%n, st.cfg.MaxResidual)
	}

	return nil
}

// randomMatrix reproduces the self-check fixture: entries in (2, 3].
func randomMatrix(n int, seed int64) (*matrix.Dense, error) {
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, errors.Wrapf(err, "selfcheck matrix of size %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = d.Set(i, j, 1+2*(1-0.5*rng.Float64())); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// parseMatrix parses a row literal argument.
func (st *state) parseMatrix(lit string) (*matrix.Dense, error) {
	m, err := matrix.ParseRows(lit)
	if err != nil {
		return nil, errors.Wrapf(err, "parse matrix %q", lit)
	}
	st.log.Debug("parsed matrix", zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))

	return m, nil
}

// unary builds a one-argument command evaluating fn on the parsed matrix.
func unary(st *state, use, short string, fn func(*matrix.Dense, *report) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " MATRIX",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := st.parseMatrix(args[0])
			if err != nil {
				return err
			}
			rep := report{Command: cmd.Name(), N: m.Rows()}
			start := time.Now()
			if err = fn(m, &rep); err != nil {
				st.log.Warn("evaluation failed", zap.Error(err))
				return err
			}
			st.log.Info("evaluated", zap.Int("n", m.Rows()), zap.Duration("elapsed", time.Since(start)))

			return st.emit(rep)
		},
	}
}

func detCmd(st *state) *cobra.Command {
	return unary(st, "det", "Print the determinant of a square matrix.", func(m *matrix.Dense, rep *report) error {
		det, err := matrix.DeterminantInPlace(m, st.cfg.options()...)
		if err != nil {
			return err
		}
		rep.Value = &det

		return nil
	})
}

func invCmd(st *state) *cobra.Command {
	return unary(st, "inv", "Print the inverse of a square matrix.", func(m *matrix.Dense, rep *report) error {
		inv, err := matrix.Inverse(m, st.cfg.options()...)
		if err != nil {
			return err
		}
		rep.setMatrix(inv)

		return nil
	})
}

func traceCmd(st *state) *cobra.Command {
	return unary(st, "trace", "Print the trace of a square matrix.", func(m *matrix.Dense, rep *report) error {
		tr, err := matrix.Trace(m)
		if err != nil {
			return err
		}
		rep.Value = &tr

		return nil
	})
}

func transposeCmd(st *state) *cobra.Command {
	return unary(st, "transpose", "Print the transpose of a matrix.", func(m *matrix.Dense, rep *report) error {
		mt, err := matrix.Transpose(m)
		if err != nil {
			return err
		}
		rep.setMatrix(mt)

		return nil
	})
}

func solveCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "solve MATRIX RHS",
		Short: "Solve MATRIX·x = RHS for x.",
		Long: `Solve factorizes MATRIX once and solves for the right-hand side RHS, given
as a single row or column literal such as "5 -2 9".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := st.parseMatrix(args[0])
			if err != nil {
				return err
			}
			rhs, err := st.parseMatrix(args[1])
			if err != nil {
				return err
			}
			if rhs.Rows() != 1 && rhs.Cols() != 1 {
				return errors.Errorf("right-hand side must be a single row or column, got %dx%d", rhs.Rows(), rhs.Cols())
			}
			f, err := matrix.Factorize(m, st.cfg.options()...)
			if err != nil {
				return err
			}
			x, err := f.Solve(rhs.RawCopy())
			if err != nil {
				return err
			}
			st.log.Info("solved", zap.Int("n", f.N()), zap.Int("swaps", f.Swaps()))

			return st.emit(report{Command: cmd.Name(), N: f.N(), Vector: x})
		},
	}
}

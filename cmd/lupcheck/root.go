// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lupkit/matrix"
)

// state is shared by the command tree of one invocation.
type state struct {
	v   *viper.Viper
	out io.Writer
	err io.Writer
	cfg config
	log *zap.Logger
}

// newRootCmd assembles the command tree. stdout receives results, stderr
// receives logs and cobra's error messages.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	st := &state{v: newViper(), out: stdout, err: stderr, log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lupcheck",
		Short: "Evaluate and self-check LU based matrix kernels.",
		Long: `lupcheck runs the lupkit kernels on matrices given as row literals
("4 3; 6 3") or on a random self-check matrix, and reports the results as
plain text, LaTeX or YAML.`,
		SilenceUsage:      true,
		PersistentPreRunE: st.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = st.log.Sync() },
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.String("log-format", "console", "Log encoding: console, json or logfmt")
	flags.StringP("output", "o", outputText, "Result format: text, latex or yaml")
	flags.Int("precision", matrix.DefaultLaTeXPrecision, "Decimal places kept by the latex output (-1 for full precision)")
	flags.Float64("pivot-tol", matrix.DefaultPivotTolerance, "Pivot magnitude at or below which a column counts as singular")

	root.AddCommand(
		selfcheckCmd(st),
		detCmd(st),
		invCmd(st),
		traceCmd(st),
		transposeCmd(st),
		solveCmd(st),
	)

	return root
}

// setup binds the flags of the running command, resolves the configuration
// and builds the logger.
func (st *state) setup(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(st.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := load(st.v)
	if err != nil {
		return err
	}
	logger, err := newLogger(st.err, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	st.cfg = cfg
	st.log = logger.With(zap.String("command", cmd.Name()))

	return nil
}

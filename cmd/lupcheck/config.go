// SPDX-License-Identifier: MIT

package main

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lupkit/matrix"
)

const envPrefix = "LUPCHECK"

// viper keys; flags use the dashed form of the same name.
const (
	keyLogLevel    = "log_level"
	keyLogFormat   = "log_format"
	keyOutput      = "output"
	keyPrecision   = "precision"
	keyPivotTol    = "pivot_tol"
	keyN           = "n"
	keySeed        = "seed"
	keyMaxResidual = "max_residual"
)

// Output formats accepted by --output.
const (
	outputText  = "text"
	outputLaTeX = "latex"
	outputYAML  = "yaml"
)

// config is the resolved flag/env state of one invocation.
type config struct {
	LogLevel    string
	LogFormat   string
	Output      string
	Precision   int
	PivotTol    float64
	N           int
	Seed        int64
	MaxResidual float64
}

// newViper returns an isolated viper instance reading LUPCHECK_* variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	return v
}

// bindFlags binds every flag of fs to the viper key with dashes turned into
// underscores.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})

	return err
}

// load reads the effective configuration and validates it.
func load(v *viper.Viper) (config, error) {
	c := config{
		LogLevel:    v.GetString(keyLogLevel),
		LogFormat:   v.GetString(keyLogFormat),
		Output:      strings.ToLower(v.GetString(keyOutput)),
		Precision:   v.GetInt(keyPrecision),
		PivotTol:    v.GetFloat64(keyPivotTol),
		N:           v.GetInt(keyN),
		Seed:        v.GetInt64(keySeed),
		MaxResidual: v.GetFloat64(keyMaxResidual),
	}
	switch c.Output {
	case outputText, outputLaTeX, outputYAML:
	default:
		return c, errors.Errorf("unknown output format %q (want text, latex or yaml)", c.Output)
	}
	if math.IsNaN(c.PivotTol) || math.IsInf(c.PivotTol, 0) || c.PivotTol < 0 {
		return c, errors.Errorf("pivot tolerance must be finite and >= 0, got %g", c.PivotTol)
	}

	return c, nil
}

// options translates the numeric part of c into matrix options.
func (c config) options() []matrix.Option {
	return []matrix.Option{matrix.WithPivotTolerance(c.PivotTol)}
}

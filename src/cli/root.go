// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/config"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/engine"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/logger"
)

// OperationPerformed reports whether the last executed command completed
// its operation.
var OperationPerformed bool

// app carries the state shared by the commands of one root command.
type app struct {
	log logger.Logger

	configPath string
	engineName string
	logFormat  string
	silent     bool

	cfg    *config.Config
	engine engine.Engine
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCmd(version, log).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. log is the logger used when the
// configuration selects text logs.
func NewRootCmd(version string, log logger.Logger) *cobra.Command {
	a := &app{log: log}

	root := &cobra.Command{
		Use:               posix.CommandName(os.Args, "tls-engine-utils"),
		Short:             "Inspect TLS handshakes, certificates and cipher suites across TLS engines",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "configuration file, JSON or YAML (default $"+config.EnvConfigFile+")")
	pf.StringVarP(&a.engineName, "engine", "e", "", "TLS engine: standard or fork (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json (overrides config)")
	pf.BoolVar(&a.silent, "silent", false, "suppress log output")

	root.AddCommand(
		a.cipherCmd(),
		a.ciphersCmd(),
		a.alpnCmd(),
		a.subjectsCmd(),
		a.inspectCmd(),
		a.validateCmd(),
		a.probeCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and installs the
// selected engine and logger as process defaults.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	OperationPerformed = false

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("engine") {
		cfg.Engine = a.engineName
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("silent") {
		cfg.Log.Silent = a.silent
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	e, err := engine.ByName(cfg.Engine)
	if err != nil {
		return err
	}
	a.cfg, a.engine = cfg, e
	engine.SetDefault(e)

	switch cfg.Log.Format {
	case config.LogFormatJSON:
		a.log = logger.NewJSONLogger(cmd.ErrOrStderr(), cfg.Log.Silent)
	default:
		if cfg.Log.Silent {
			a.log.SetOutput(io.Discard)
		} else {
			a.log.SetOutput(cmd.ErrOrStderr())
		}
	}
	logger.SetDefault(a.log)
	return nil
}

func (a *app) done() { OperationPerformed = true }

// Command cscgen generates and checks sparse-eigenvalue fixtures.
//
//	cscgen generate [--config cscgen.yaml] [--out-dir DIR] ...
//	cscgen verify [DIR]
//	cscgen solve FILE.in
//	cscgen plot FILE.in --out spectrum.png
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cscgen/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd, a := newCmd()
	err := execute(ctx, cmd, a)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cscgen:", err)
		os.Exit(1)
	}
}

// app carries state shared by subcommands once the root flags are parsed.
type app struct {
	logCfg logging.Config
	log    *slog.Logger
	closer io.Closer
}

// closeLog releases the log sink opened by the root pre-run hook, once.
func (a *app) closeLog() error {
	if a.closer == nil {
		return nil
	}
	c := a.closer
	a.closer = nil

	return c.Close()
}

// execute runs cmd and closes the log sink whatever the outcome; cobra skips
// post-run hooks when RunE fails.
func execute(ctx context.Context, cmd *cobra.Command, a *app) error {
	err := cmd.ExecuteContext(ctx)
	if cerr := a.closeLog(); cerr != nil && err == nil {
		err = fmt.Errorf("close log: %w", cerr)
	}

	return err
}

// newCmd builds the command tree and the state its hooks share.
func newCmd() (*cobra.Command, *app) {
	cobra.EnableCommandSorting = false
	a := &app{logCfg: logging.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:           "cscgen [command] [flags] [args]",
		Short:         "cscgen generates sparse symmetric eigenvalue fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, closer, err := logging.New(a.logCfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log, a.closer = log, closer
			return nil
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.logCfg.Level, "log-level", a.logCfg.Level, "`<Level>` debug, info, warn or error")
	pf.StringVar((*string)(&a.logCfg.Format), "log-format", string(a.logCfg.Format), "`<Format>` text or json")
	pf.StringVar(&a.logCfg.Filename, "log-file", "", "`<Path>` of a rotated log file (in addition to stderr)")
	pf.BoolVar(&a.logCfg.Console, "log-console", a.logCfg.Console, "log to stderr")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newVerifyCmd(a),
		newSolveCmd(a),
		newPlotCmd(a),
	)

	return rootCmd, a
}

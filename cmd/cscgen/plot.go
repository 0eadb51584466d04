package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cscgen/fixture"
	"github.com/katalvlaran/cscgen/matrix"
)

func newPlotCmd(a *app) *cobra.Command {
	var engine, out string

	cmd := &cobra.Command{
		Use:   "plot [flags] <file.in>",
		Short: "Render the eigenvalue histogram of one .in file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := matrix.ParseEngine(engine)
			if err != nil {
				return err
			}
			m, err := loadInput(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			if err := fixture.PlotSpectrum(m, e, caseTitle(args[0]), out); err != nil {
				return err
			}
			a.log.Info("spectrum plotted", "file", args[0], "out", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", matrix.EngineSymmetric.String(), "symmetric, general or jacobi")
	cmd.Flags().StringVarP(&out, "out", "o", "", "`<Path>` of the image; the extension picks the format (default FILE.png)")

	return cmd
}

// caseTitle names a plot after its fixture file.
func caseTitle(path string) string {
	return strings.TrimSuffix(filepath.Base(path), fixture.InputExt)
}

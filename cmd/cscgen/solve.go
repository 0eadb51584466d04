package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cscgen/fixture"
	"github.com/katalvlaran/cscgen/matrix"
)

func newSolveCmd(a *app) *cobra.Command {
	var engine string
	var seed int64

	cmd := &cobra.Command{
		Use:   "solve [flags] <file.in>",
		Short: "Print max|λ| of one .in file",
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
			v, err := matrix.DominantEigenvalue(m, e,
				matrix.WithJacobi(matrix.DefaultJacobiTol, matrix.JacobiRotations(m.Rows())),
				matrix.WithSeed(seed))
			if err != nil {
				return err
			}
			a.log.Debug("solved", "file", args[0], "engine", e, "size", m.Rows(), "nnz", m.NNZ())
			fmt.Fprintln(cmd.OutOrStdout(), fixture.FormatEigenvalue(v))
			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", matrix.EnginePower.String(), "symmetric, general, jacobi or power")
	cmd.Flags().Int64Var(&seed, "seed", fixture.DefaultPowerSeed, "start-vector seed for power iteration")

	return cmd
}

func loadInput(path string) (*matrix.CSC, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := fixture.ReadInput(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return m, nil
}

package main

import (
	"fmt"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cscgen/fixture"
	"github.com/katalvlaran/cscgen/matrix"
)

func newVerifyCmd(a *app) *cobra.Command {
	opts := fixture.DefaultVerifyOptions()
	var engine string
	var absolute bool

	cmd := &cobra.Command{
		Use:   "verify [flags] [dir]",
		Short: "Recompute and check every fixture in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			e, err := matrix.ParseEngine(engine)
			if err != nil {
				return err
			}
			opts.Engine = e
			if absolute {
				opts.Mode = fixture.ToleranceAbsolute
			}

			reports, err := fixture.VerifyDir(cmd.Context(), dir, opts)
			if reports != nil {
				renderReports(cmd, reports, opts.Power)
			}
			for _, r := range reports {
				switch {
				case r.Err != nil:
					a.log.Error("fixture failed", "case", r.Name, "err", r.Err)
				case r.PowerErr != nil:
					a.log.Warn("power iteration disagrees", "case", r.Name, "err", r.PowerErr)
				}
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d fixtures OK\n", len(reports))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&engine, "engine", opts.Engine.String(), "symmetric, general, jacobi or power")
	f.Float64Var(&opts.Tolerance, "tolerance", opts.Tolerance, "allowed eigenvalue error")
	f.BoolVar(&absolute, "absolute", false, "treat --tolerance as absolute instead of relative")
	f.Float64Var(&opts.SymmetryTol, "symmetry-tol", opts.SymmetryTol, "allowed |A[i,j]-A[j,i]|")
	f.BoolVar(&opts.Power, "power", false, "also run power iteration on every fixture")
	f.Int64Var(&opts.PowerSeed, "power-seed", opts.PowerSeed, "start-vector seed for power iteration")
	f.IntVarP(&opts.Workers, "workers", "j", opts.Workers, "fixtures checked in parallel")

	return cmd
}

func renderReports(cmd *cobra.Command, reports []fixture.Report, power bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleLight)
	header := table.Row{"CASE", "SIZE", "NNZ", "EXPECTED", "ACTUAL", "REL.ERR"}
	if power {
		header = append(header, "POWER")
	}
	tw.AppendHeader(append(header, "STATUS"))

	var failed int
	for _, r := range reports {
		status := "ok"
		if !r.OK() {
			status = "FAIL"
			failed++
		}
		row := table.Row{r.Name, r.Size, r.NNZ,
			fixture.FormatEigenvalue(r.Expected), fixture.FormatEigenvalue(r.Actual), fmt.Sprintf("%.2e", r.RelErr)}
		if power {
			p := "-"
			if !math.IsNaN(r.Power) {
				p = fixture.FormatEigenvalue(r.Power)
			}
			if r.PowerErr != nil {
				p += " (!)"
			}
			row = append(row, p)
		}
		tw.AppendRow(append(row, status))
	}
	tw.AppendFooter(table.Row{"TOTAL", len(reports), "", "", "", fmt.Sprintf("%d failed", failed)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	tw.Render()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"silica/internal/config"
	"silica/internal/driver"
	"silica/internal/report"
)

var elaborateFormat string

var elaborateCmd = &cobra.Command{
	Use:   "elaborate",
	Short: "Elaborate the built-in showcase designs and dump the symbol tree",
	Long: `Elaborates the embedded showcase designs in parallel, prints the
diagnostics of each, and dumps the first design's symbol tree in the
configured report format.`,
	RunE: runElaborate,
}

func init() {
	elaborateCmd.Flags().StringVar(&elaborateFormat, "format", "", "report format (json|msgpack)")
}

func runElaborate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if elaborateFormat != "" {
		cfg.Report.Format = elaborateFormat
	}
	if maxDiags, err := cmd.Flags().GetInt("max-diagnostics"); err == nil && maxDiags > 0 {
		cfg.Elaboration.MaxDiagnostics = maxDiags
	}

	jobs := showcaseJobs()
	results, err := driver.ElaborateAll(cmd.Context(), cfg.Elaboration, jobs, 0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		fmt.Fprintf(out, "== %s ==\n", res.Name)
		if res.Bag.Len() == 0 {
			fmt.Fprintln(out, "no diagnostics")
			continue
		}
		fmt.Fprint(out, res.Bag.Dump())
	}

	data, err := report.Encode(results[0].Comp.Root().Owner(), cfg.Report.Format)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

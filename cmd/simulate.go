package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mandarini/astra-arcana/internal/engine"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [recipe]",
	Short: "Cast the same selection many times and compare the observed success rate",
	Long: `Runs repeated casts of one selection in parallel without recording them. Use
--seed for a reproducible run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := readRequest(cmd, args)
		if err != nil {
			return err
		}
		eng, err := newEngine()
		if err != nil {
			return err
		}

		trials, _ := cmd.Flags().GetInt("trials")
		workers, _ := cmd.Flags().GetInt("workers")
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg := engine.SimulationConfig{
			Trials:  trials,
			Workers: workers,
			Seed:    viper.GetUint64("seed"),
		}
		if !asJSON {
			bar := progressbar.Default(int64(trials), "Casting")
			cfg.OnTrial = func() { _ = bar.Add(1) }
			defer bar.Close()
		}

		report, err := eng.Simulate(cmd.Context(), req.Ingredients, req.Incantations, cfg)
		if err != nil {
			return err
		}

		if asJSON {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	addRequestFlags(simulateCmd)
	simulateCmd.Flags().Int("trials", 1000, "number of casts")
	simulateCmd.Flags().Int("workers", runtime.NumCPU(), "parallel workers")
}

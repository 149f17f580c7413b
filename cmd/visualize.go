package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var visualizeCmd = &cobra.Command{
	Use:     "visualize [recipe]",
	Aliases: []string{"viz"},
	Short:   "Show the elemental balance and interactions of a selection without casting it",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := readRequest(cmd, args)
		if err != nil {
			return err
		}
		eng, err := newEngine()
		if err != nil {
			return err
		}

		viz := eng.Visualize(req.Ingredients, req.Incantations)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(viz, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderVisualization(viz))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(visualizeCmd)
	addRequestFlags(visualizeCmd)
}

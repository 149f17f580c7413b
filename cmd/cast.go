package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mandarini/astra-arcana/internal/logging"
	"github.com/mandarini/astra-arcana/internal/persistence"
)

var castCmd = &cobra.Command{
	Use:   "cast [recipe]",
	Short: "Cast a spell and record it in the cast log",
	Long: `Casts a selection of ingredients and incantations, given as a saved recipe name
(looked up as recipes/<name>.yaml under the configured data directories), a request
file, or an inline formula:

  astra-arcana cast --formula 'ingredient "Dragon scale" affinity: fire age: ancient + incantation "Ignis" language: Latin kind: spell'`,
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

		result := eng.CalculateComplete(req.Ingredients, req.Incantations)

		if noLog, _ := cmd.Flags().GetBool("no-log"); !noLog {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			entry := persistence.NewEntry(result, req.Ingredients, req.Incantations, time.Now())
			if err := store.Append(entry); err != nil {
				return fmt.Errorf("failed to record cast: %w", err)
			}
			logging.New("cast").Info("cast recorded", "id", entry.ID, "success", entry.Success, "log", store.Path())
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderCast(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(castCmd)
	addRequestFlags(castCmd)
	castCmd.Flags().Bool("no-log", false, "do not record the cast")
}

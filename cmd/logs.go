package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List recently recorded casts",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := store.Recent(limit)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No casts recorded in %s\n", store.Path())
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"When", "Ingredients", "Incantations", "Rate", "Result", "Message"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Name: "Rate", Align: text.AlignRight},
			{Name: "Message", WidthMax: 60},
		})
		for _, e := range entries {
			result := text.FgGreen.Sprint("success")
			if !e.Success {
				result = text.FgRed.Sprint("failed")
			}
			t.AppendRow(table.Row{
				e.Timestamp.Local().Format(time.DateTime),
				len(e.Ingredients),
				len(e.Incantations),
				fmt.Sprintf("%.0f%%", e.SpellResult.SuccessRate),
				result,
				e.Message,
			})
		}
		t.AppendFooter(table.Row{"", "", "", "", "", fmt.Sprintf("%d casts", len(entries))})
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().Int("limit", 20, "how many of the newest casts to show (0 for all)")
	logsCmd.Flags().Bool("json", false, "print JSON instead of a table")
}

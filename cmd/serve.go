package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mandarini/astra-arcana/internal/logging"
	"github.com/mandarini/astra-arcana/internal/mcpserver"
	"github.com/mandarini/astra-arcana/internal/persistence"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP tool server over stdio",
	Long: `Starts a Model Context Protocol server on stdin/stdout exposing the cast_spell,
visualize_spell and recent_casts tools. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		var store *persistence.Store
		if noLog, _ := cmd.Flags().GetBool("no-log"); !noLog {
			store, err = openStore()
			if err != nil {
				return err
			}
			defer store.Close()
		}

		srv := mcpserver.NewServer(eng, store, Version)
		logging.New("mcp").Info("starting astra-arcana MCP server over stdio")
		return srv.MCPServer.Run(cmd.Context(), &sdkmcp.StdioTransport{})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("no-log", false, "do not record casts made through the server")
}

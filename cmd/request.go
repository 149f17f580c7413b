package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mandarini/astra-arcana/internal/data"
	"github.com/mandarini/astra-arcana/internal/parser"
)

// addRequestFlags registers the ways a selection can be given to a command.
func addRequestFlags(c *cobra.Command) {
	c.Flags().StringP("file", "f", "", "YAML or JSON request file with ingredients and incantations (- for stdin)")
	c.Flags().String("formula", "", `inline formula, e.g. 'ingredient "Dragon scale" affinity: fire + incantation "Ignis" language: Latin'`)
	c.Flags().Bool("json", false, "print JSON instead of formatted text")
	c.MarkFlagsMutuallyExclusive("file", "formula")
}

// readRequest resolves a selection from --formula, --file or a recipe name
// looked up under the configured data directories.
func readRequest(c *cobra.Command, args []string) (*data.CastRequest, error) {
	formula, _ := c.Flags().GetString("formula")
	file, _ := c.Flags().GetString("file")

	switch {
	case formula != "":
		return parser.Parse(formula)
	case file == "-":
		return data.DecodeRequest(os.Stdin)
	case file != "":
		return data.ReadRequestFile(file)
	case len(args) > 0:
		return data.NewLoader(viper.GetStringSlice("data_dirs")).LoadRequest(args[0])
	}
	return nil, errors.New("nothing to cast: pass a recipe name, --file or --formula")
}

/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mandarini/astra-arcana/internal/data"
	"github.com/mandarini/astra-arcana/internal/engine"
	"github.com/mandarini/astra-arcana/internal/logging"
	"github.com/mandarini/astra-arcana/internal/persistence"
	"github.com/mandarini/astra-arcana/internal/rules"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "astra-arcana",
	Short: "Cast spells from ingredients and incantations",
	Long: `astra-arcana scores a selection of ingredients and incantations against the
six hexagonal elements (fire, water, earth, air, aether and void), rolls for
success and describes what the spell does.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		logging.Init(level, viper.GetString("log_format"))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.astra-arcana.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("cast-log", "./spell-logs.jsonl", "file recording recent casts")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for the success roll (0 is random)")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("cast_log", rootCmd.PersistentFlags().Lookup("cast-log"))
	_ = viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))

	viper.SetDefault("log_format", "text")
	viper.SetDefault("cast_log_limit", persistence.DefaultLimit)
	viper.SetDefault("data_dirs", []string{"."})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".astra-arcana")
	}

	viper.SetEnvPrefix("ARCANA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newEngine builds the engine from the configured table and rule overrides.
func newEngine() (*engine.Engine, error) {
	opts := []engine.Option{engine.WithLogger(logging.New("engine"))}

	if path := viper.GetString("tables"); path != "" {
		t, err := data.LoadTables(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithTables(t))
	}
	if path := viper.GetString("specials"); path != "" {
		rs, err := rules.LoadRuleSet(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithRuleSet(rs.WithLogger(logging.New("rules"))))
	}
	if seed := viper.GetUint64("seed"); seed != 0 {
		opts = append(opts, engine.WithRoll(seededRoll(seed)))
	}
	return engine.New(opts...)
}

// seededRoll is a reproducible RollFunc that is safe to share between tool calls.
func seededRoll(seed uint64) engine.RollFunc {
	var mu sync.Mutex
	src := rand.New(rand.NewPCG(seed, seed))
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return src.Float64()
	}
}

func openStore() (*persistence.Store, error) {
	return persistence.NewStore(viper.GetString("cast_log"), viper.GetInt("cast_log_limit"))
}

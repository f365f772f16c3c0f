package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/persona/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "persona",
	Short: "Terminal personality type quiz",
	Long:  "Persona: answer twenty forced-choice questions and get your four-letter personality type, in English or Chinese.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("lang", "", "Display language, en or zh (overrides PERSONA_LANG)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for question selection, 0 for random (overrides PERSONA_SEED)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides PERSONA_LOG_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(archetypeCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the environment config and applies flags on top.
// A flag only wins when it was set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Lang, _ = flags.GetString("lang")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	// Flags and env share one language policy: unknown values are errors.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/praclab/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "praclab",
	Short: "Terminal practice lab for question sets",
	Long: "praclab quizzes you on question sets stored as CSV, JSON, YAML or SQLite files.\n" +
		"Answers are compared after trimming, lower-casing and collapsing whitespace.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("dir", "", "Question directory (overrides PRACLAB_DIR and the config file)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides PRACLAB_CONFIG)")
	rootCmd.Flags().String("set", "", "Question set to open first (default: first listed set)")
	rootCmd.Flags().String("theme", "", "Color theme: dark or light")
	rootCmd.Flags().String("log", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the config file and environment, then applies any
// flags that were set on the command line.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Resolve(path)
	if err != nil {
		return config.Config{}, err
	}

	overrides := map[string]*string{
		"dir":   &cfg.Dir,
		"theme": &cfg.Theme,
		"log":   &cfg.LogFile,
	}
	for name, field := range overrides {
		f := cmd.Flags().Lookup(name)
		if f != nil && f.Changed {
			*field = f.Value.String()
		}
	}

	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

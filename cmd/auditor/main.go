package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/auditor/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:          "auditor",
	Short:        "Project auditor",
	Long:         `Audits project assets and Go code, reporting resources folder dependencies and hot path calls`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(descriptorsCmd)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (yaml or toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

// loadConfig loads the config flag, root argument overrides the configured root
func loadConfig(ctx context.Context, cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if URL, _ := cmd.Flags().GetString("config"); URL != "" {
		loaded, err := config.Load(ctx, URL)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Root = args[0]
	}
	return cfg, nil
}

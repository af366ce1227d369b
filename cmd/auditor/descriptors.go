package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/auditor"
	"gopkg.in/yaml.v3"
)

var descriptorsCmd = &cobra.Command{
	Use:   "descriptors",
	Short: "Print registered issue descriptors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Context(), cmd, nil)
		if err != nil {
			return err
		}
		session, err := auditor.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		if err = encoder.Encode(session.Registry().Descriptors()); err != nil {
			return fmt.Errorf("failed to encode descriptors: %w", err)
		}
		return encoder.Close()
	},
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/auditor"
	"github.com/viant/auditor/inspector/issue"
	"github.com/viant/auditor/report"
)

var graphCmd = &cobra.Command{
	Use:   "graph [flags] [root]",
	Short: "Export the asset dependency graph or the code call graph",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraph,
}

func init() {
	graphCmd.Flags().String("category", issue.Assets.String(), "graph category (Assets|Code)")
	graphCmd.Flags().StringP("format", "f", report.FormatYAML, "output format (yaml|json)")
}

func runGraph(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx, cmd, args)
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("category")
	category, err := issue.ParseCategory(name)
	if err != nil {
		return err
	}
	cfg.SkipAssets = category != issue.Assets
	cfg.SkipCode = category != issue.Code

	session, err := auditor.New(ctx, cfg, auditor.WithLogger(logger))
	if err != nil {
		return err
	}
	if err = session.Run(ctx); err != nil {
		return err
	}
	aGraph := session.Graph(category)
	if aGraph == nil {
		return fmt.Errorf("no %v graph", category)
	}
	format, _ := cmd.Flags().GetString("format")
	return report.WriteGraph(os.Stdout, format, report.ExportGraph(aGraph))
}

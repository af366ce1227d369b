package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/viant/auditor"
	"github.com/viant/auditor/inspector/issue"
	"github.com/viant/auditor/report"
	"github.com/viant/auditor/table"
	"go.uber.org/zap"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [root]",
	Short: "Audit a project and report issues",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringP("format", "f", report.FormatText, "output format ("+strings.Join(report.Formats(), "|")+")")
	scanCmd.Flags().StringP("output", "o", "", "output file, stdout by default")
	scanCmd.Flags().String("search", "", "show issues matching text")
	scanCmd.Flags().StringSlice("area", nil, "show issues of areas")
	scanCmd.Flags().StringSlice("sort", nil, "sort keys column[:asc|:desc], custom columns as custom:<index>")
	scanCmd.Flags().Bool("critical", false, "show perf critical issues only")
	scanCmd.Flags().Bool("muted", false, "show issues muted by rules")
	scanCmd.Flags().Bool("collapse", false, "show group rows only")
	scanCmd.Flags().Bool("javascript", false, "follow JavaScript imports between assets")
	scanCmd.Flags().String("color", "auto", "colorize output (auto|on|off)")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	cfg, err := loadConfig(ctx, cmd, args)
	if err != nil {
		return err
	}
	if javascript, _ := cmd.Flags().GetBool("javascript"); javascript {
		cfg.Javascript = true
	}

	session, err := auditor.New(ctx, cfg, auditor.WithLogger(logger), auditor.WithProgress(func(done, total int) {
		logger.Debug("asset progress", zap.Int("done", done), zap.Int("total", total))
	}))
	if err != nil {
		return err
	}
	if err = session.Run(ctx); err != nil {
		return err
	}

	search, _ := cmd.Flags().GetString("search")
	aFilter := session.Filter(search)
	aFilter.Areas, _ = cmd.Flags().GetStringSlice("area")
	aFilter.CriticalOnly, _ = cmd.Flags().GetBool("critical")
	aFilter.ShowMuted, _ = cmd.Flags().GetBool("muted")

	text := report.NewText(cfg.Views)
	text.Match = aFilter.Match
	if aFilter.HasSearch() {
		text.Search = aFilter.Search
	}
	text.Collapse, _ = cmd.Flags().GetBool("collapse")
	text.Color = useColor(cmd)
	sortExprs, _ := cmd.Flags().GetStringSlice("sort")
	for _, expr := range sortExprs {
		key, err := table.ParseSortKey(expr)
		if err != nil {
			return err
		}
		text.SortKeys = append(text.SortKeys, key)
	}

	format, _ := cmd.Flags().GetString("format")
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return err
	}
	emitter, err := report.New(format, text, root)
	if err != nil {
		return err
	}
	writer := os.Stdout
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer file.Close()
		writer = file
	}
	issues := session.Issues()
	if _, ok := emitter.(*report.Text); !ok {
		issues = matching(issues, aFilter.Match)
	}
	return emitter.Emit(writer, issues)
}

// matching returns issues for emitters rendering records rather than tables
func matching(issues []*issue.Issue, match table.Matcher) []*issue.Issue {
	var result []*issue.Issue
	for _, anIssue := range issues {
		if match(anIssue) {
			result = append(result, anIssue)
		}
	}
	return result
}

func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return !color.NoColor
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/viant/auditor/config"
	"github.com/viant/auditor/inspector/issue"
	"github.com/viant/auditor/table"
)

const (
	maxCellWidth = 60
	indentWidth  = 2
	columnGap    = "  "
)

// Text renders issues as one table per category
type Text struct {
	Views    []*config.View
	Match    table.Matcher
	Search   string // active search presents issues without groups
	SortKeys []table.SortKey
	Color    bool
	Collapse bool // show group rows only
}

// NewText creates a text emitter
func NewText(views []*config.View) *Text {
	if views == nil {
		views = config.DefaultViews()
	}
	return &Text{Views: views}
}

// Emit writes a table per category in category order
func (e *Text) Emit(w io.Writer, issues []*issue.Issue) error {
	byCategory := map[issue.Category][]*issue.Issue{}
	for _, anIssue := range issues {
		byCategory[anIssue.Category] = append(byCategory[anIssue.Category], anIssue)
	}
	for _, category := range issue.Categories() {
		if len(byCategory[category]) == 0 {
			continue
		}
		if err := e.emitCategory(w, category, byCategory[category]); err != nil {
			return err
		}
	}
	return nil
}

func (e *Text) view(category issue.Category) *config.View {
	for _, view := range e.Views {
		if view.Category == category {
			return view
		}
	}
	return &config.View{Category: category, Group: true, Columns: []string{"description", "severity", "area", "path"}}
}

func (e *Text) emitCategory(w io.Writer, category issue.Category, issues []*issue.Issue) error {
	view := e.view(category)
	columns, err := table.ViewColumns(view)
	if err != nil {
		return fmt.Errorf("failed to render %v: %w", category, err)
	}
	aTable := table.New(table.WithGrouping(view.Group), table.WithExpanded(!e.Collapse), table.WithSortKeys(e.SortKeys...))
	aTable.AddIssues(issues...)
	aTable.SetSearch(e.Search)
	rows := aTable.BuildRows(e.Match)

	cells := make([][]string, len(rows))
	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = runewidth.StringWidth(column.Title)
	}
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for c, column := range columns {
			text := table.Cell(row, column)
			if c == 0 && row.Parent() != nil {
				text = strings.Repeat(" ", row.Depth*indentWidth) + text
			}
			text = runewidth.Truncate(text, maxCellWidth, "...")
			cells[r][c] = text
			if width := runewidth.StringWidth(text); width > widths[c] {
				widths[c] = width
			}
		}
	}

	title := color.New(color.Bold)
	if e.Color {
		title.EnableColor()
	} else {
		title.DisableColor()
	}
	if _, err = fmt.Fprintf(w, "%s\n", title.Sprintf("%v (%d of %d issues)", category, aTable.NumMatchingIssues(), len(issues))); err != nil {
		return err
	}
	header := make([]string, len(columns))
	for i, column := range columns {
		header[i] = runewidth.FillRight(column.Title, widths[i])
	}
	if _, err = fmt.Fprintln(w, strings.TrimRight(strings.Join(header, columnGap), " ")); err != nil {
		return err
	}
	for r, row := range rows {
		line := make([]string, len(columns))
		for c, column := range columns {
			text := runewidth.FillRight(cells[r][c], widths[c])
			if column.Kind == table.Severity && e.Color {
				text = severityColor(row).Sprint(text)
			}
			line[c] = text
		}
		if _, err = fmt.Fprintln(w, strings.TrimRight(strings.Join(line, columnGap), " ")); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

// severityColor returns a style for one cell
func severityColor(row *table.Item) *color.Color {
	if row.Issue == nil {
		return color.New(color.Reset)
	}
	var ret *color.Color
	switch row.Issue.Severity() {
	case issue.SeverityError:
		ret = color.New(color.FgRed, color.Bold)
	case issue.SeverityWarning:
		ret = color.New(color.FgYellow, color.Bold)
	case issue.SeverityInfo:
		ret = color.New(color.FgCyan)
	default:
		ret = color.New(color.Faint)
	}
	ret.EnableColor()
	return ret
}

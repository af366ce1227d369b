package table

import (
	"strconv"
	"strings"

	"github.com/viant/auditor/inspector/issue"
)

const checkMark = "✓"

// Cell returns the text of an item in a column
func Cell(item *Item, column Column) string {
	switch column.Kind {
	case Description:
		if item.IsGroup() || item.IsPlaceholder() {
			return item.displayName
		}
		return item.DisplayName()
	case Severity:
		if item.IsPlaceholder() {
			return ""
		}
		return severityText(item)
	case Area:
		if item.Descriptor == nil {
			return ""
		}
		return item.Descriptor.Area
	}
	anIssue := item.Issue
	if anIssue == nil {
		return ""
	}
	switch column.Kind {
	case Path:
		return withLine(anIssue, anIssue.RelativePath())
	case Filename:
		return withLine(anIssue, anIssue.Filename())
	case FileType:
		return strings.TrimPrefix(anIssue.Extension(), ".")
	case Custom:
		switch column.Format {
		case FormatBool:
			if anIssue.CustomPropertyAsBool(column.Index) {
				return checkMark
			}
			return ""
		case FormatInteger:
			if _, err := strconv.Atoi(anIssue.CustomProperty(column.Index)); err != nil {
				return ""
			}
		}
		return anIssue.CustomProperty(column.Index)
	}
	return ""
}

func withLine(anIssue *issue.Issue, text string) string {
	if anIssue.Category == issue.Code && text != "" && anIssue.Line() > 0 {
		return text + ":" + strconv.Itoa(anIssue.Line())
	}
	return text
}

func severityText(item *Item) string {
	if item.Issue != nil {
		return item.Issue.Severity().String()
	}
	if item.Descriptor != nil {
		return item.Descriptor.Severity.String()
	}
	return ""
}

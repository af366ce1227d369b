package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/viant/auditor/inspector/issue"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

const diagnosticSource = "auditor"

// LSP writes publishDiagnostics params, one per file
type LSP struct {
	Root string
}

// Emit writes diagnostics as a JSON array
func (e *LSP) Emit(w io.Writer, issues []*issue.Issue) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(e.Diagnostics(issues)); err != nil {
		return fmt.Errorf("failed to encode diagnostics: %w", err)
	}
	return nil
}

// Diagnostics groups issues with a location by file, in first seen order
func (e *LSP) Diagnostics(issues []*issue.Issue) []*protocol.PublishDiagnosticsParams {
	var result []*protocol.PublishDiagnosticsParams
	index := map[string]int{}
	for _, anIssue := range issues {
		if anIssue.Location == nil || !anIssue.Location.IsValid() {
			continue
		}
		location := anIssue.RelativePath()
		if e.Root != "" && !filepath.IsAbs(location) {
			location = filepath.Join(e.Root, filepath.FromSlash(location))
		}
		idx, ok := index[location]
		if !ok {
			result = append(result, &protocol.PublishDiagnosticsParams{URI: protocol.DocumentURI(uri.File(location))})
			idx = len(result) - 1
			index[location] = idx
		}
		result[idx].Diagnostics = append(result[idx].Diagnostics, NewDiagnostic(anIssue))
	}
	return result
}

// NewDiagnostic converts an issue, lines are zero based
func NewDiagnostic(anIssue *issue.Issue) protocol.Diagnostic {
	line := uint32(0)
	if anIssue.Line() > 0 {
		line = uint32(anIssue.Line() - 1)
	}
	message := anIssue.Descriptor.Description
	if anIssue.Description != "" && anIssue.Description != message {
		message += ": " + anIssue.Description
	}
	if name := anIssue.Name(); name != "" {
		message += " (" + name + ")"
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line},
			End:   protocol.Position{Line: line},
		},
		Severity: diagnosticSeverity(anIssue.Severity()),
		Code:     anIssue.Descriptor.ID,
		Source:   diagnosticSource,
		Message:  message,
	}
}

func diagnosticSeverity(severity issue.Severity) protocol.DiagnosticSeverity {
	switch severity {
	case issue.SeverityError:
		return protocol.DiagnosticSeverityError
	case issue.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	case issue.SeverityInfo:
		return protocol.DiagnosticSeverityInformation
	}
	return protocol.DiagnosticSeverityHint
}

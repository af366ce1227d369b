package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/viant/auditor/inspector/issue"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Emitter writes issues of an analysis pass
type Emitter interface {
	Emit(w io.Writer, issues []*issue.Issue) error
}

const (
	FormatText    = "text"
	FormatYAML    = "yaml"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
	FormatLSP     = "lsp"
)

// Formats returns supported formats
func Formats() []string {
	return []string{FormatText, FormatYAML, FormatJSON, FormatMsgpack, FormatLSP}
}

// New returns an emitter for a format, text emitters use the supplied text emitter
func New(format string, text *Text, root string) (Emitter, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		if text == nil {
			text = NewText(nil)
		}
		return text, nil
	case FormatYAML, "yml":
		return &YAML{}, nil
	case FormatJSON:
		return &JSON{Indent: "  "}, nil
	case FormatMsgpack:
		return &Msgpack{}, nil
	case FormatLSP:
		return &LSP{Root: root}, nil
	}
	return nil, fmt.Errorf("unsupported report format: %s", format)
}

// YAML writes issue records as a YAML sequence
type YAML struct{}

// Emit writes records
func (e *YAML) Emit(w io.Writer, issues []*issue.Issue) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewRecords(issues)); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	return encoder.Close()
}

// JSON writes issue records as a JSON array
type JSON struct {
	Indent string
}

// Emit writes records
func (e *JSON) Emit(w io.Writer, issues []*issue.Issue) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", e.Indent)
	if err := encoder.Encode(NewRecords(issues)); err != nil {
		return fmt.Errorf("failed to encode json report: %w", err)
	}
	return nil
}

// Msgpack writes issue records with msgpack
type Msgpack struct{}

// Emit writes records
func (e *Msgpack) Emit(w io.Writer, issues []*issue.Issue) error {
	if err := msgpack.NewEncoder(w).Encode(NewRecords(issues)); err != nil {
		return fmt.Errorf("failed to encode msgpack report: %w", err)
	}
	return nil
}

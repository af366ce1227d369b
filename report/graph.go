package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/viant/auditor/inspector/graph"
	"gopkg.in/yaml.v3"
)

// GraphNode represents an exported graph node
type GraphNode struct {
	ID         string                 `yaml:"id" json:"id"`
	Type       string                 `yaml:"type" json:"type"`
	Properties map[string]interface{} `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// GraphEdge points from a node to one of its consumers or callers
type GraphEdge struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
	Type   string `yaml:"type" json:"type"`
}

// Graph holds exported nodes and edges
type Graph struct {
	Nodes []GraphNode `yaml:"nodes" json:"nodes"`
	Edges []GraphEdge `yaml:"edges" json:"edges"`
}

// ExportGraph converts a graph, edges keep the consumer direction
func ExportGraph(aGraph *graph.Graph) *Graph {
	ret := &Graph{}
	edgeType := "consumedBy"
	if aGraph != nil && aGraph.Kind == graph.KindCall {
		edgeType = "calledBy"
	}
	for _, node := range aGraph.Nodes() {
		properties := map[string]interface{}{
			"name":         node.PrettyName(),
			"perfCritical": node.IsPerfCritical(),
		}
		if node.Critical {
			properties["critical"] = true
		}
		ret.Nodes = append(ret.Nodes, GraphNode{ID: node.ID(), Type: node.Kind.String(), Properties: properties})
		for _, child := range node.Children() {
			ret.Edges = append(ret.Edges, GraphEdge{Source: node.ID(), Target: child.ID(), Type: edgeType})
		}
	}
	return ret
}

// WriteGraph writes an exported graph as yaml or json
func WriteGraph(w io.Writer, format string, exported *Graph) error {
	switch strings.ToLower(format) {
	case "", FormatYAML, "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(exported); err != nil {
			return fmt.Errorf("failed to encode graph: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(exported); err != nil {
			return fmt.Errorf("failed to encode graph: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported graph format: %s", format)
}

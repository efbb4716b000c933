// Package file loads dialogue graphs from declarative JSON or YAML files.
//
// A graph document is an object with a "nodes" list; each entry carries the
// node id, its kind, the style-to-text message table, and either choice
// options or a next-node reference. Decoding is two-step: the file is parsed
// into raw maps, then mapped onto typed metadata, so JSON and YAML share one
// code path.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/moringa-school/karibu/pkg/dialog"
)

// document is the top-level shape of a graph file.
type document struct {
	Nodes []nodeMetadata `mapstructure:"nodes"`
}

// nodeMetadata mirrors one node entry as written by flow authors.
type nodeMetadata struct {
	ID       string            `mapstructure:"id"`
	Type     string            `mapstructure:"type"`
	Messages map[string]string `mapstructure:"messages"`
	Options  []optionMetadata  `mapstructure:"options"`
	NextNode string            `mapstructure:"next_node"`
}

type optionMetadata struct {
	Label  string `mapstructure:"label"`
	Target string `mapstructure:"target"`
}

// Load reads, decodes, and validates the graph file at path. The extension
// selects the parser: .json, .yaml, or .yml. Any structural problem in the
// graph aborts the load; a partially valid graph is never returned.
func Load(path string) (*dialog.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}

	raw, err := parse(path, data)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to map graph document: %w", path, err)
	}

	nodes := make([]dialog.Node, 0, len(doc.Nodes))
	for _, meta := range doc.Nodes {
		nodes = append(nodes, toNode(meta))
	}

	g, err := dialog.NewGraph(nodes...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func parse(path string, data []byte) (map[string]any, error) {
	var raw map[string]any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse JSON: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported graph file extension %q", path, ext)
	}

	return raw, nil
}

func toNode(meta nodeMetadata) dialog.Node {
	node := dialog.Node{
		ID:       meta.ID,
		Kind:     meta.Type,
		Messages: meta.Messages,
		Next:     meta.NextNode,
	}
	for _, opt := range meta.Options {
		node.Options = append(node.Options, dialog.Option{
			Label:  opt.Label,
			Target: opt.Target,
		})
	}
	return node
}

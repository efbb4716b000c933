// Package graph renders dialogue graphs as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/moringa-school/karibu/pkg/dialog"
)

// GenerateMermaid produces Mermaid flowchart syntax (graph TD) from a list
// of dialogue nodes. Shapes follow the node kinds:
//   - start: ((Circle))
//   - choice: [/Parallelogram/]
//   - terminal: [[Double rectangle]]
//   - message: [Rectangle]
//
// Option labels annotate their edges.
func GenerateMermaid(nodes []dialog.Node) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.ID == dialog.StartID:
			opener, closer = "((", "))"
		case node.Kind == dialog.KindChoice:
			opener, closer = "[/", "/]"
		case node.Kind == dialog.KindTerminal:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, node.ID, closer))

		if node.Next != "" {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(node.Next)))
		}
		for _, opt := range node.Options {
			// Escape double quotes in the label for Mermaid
			safeLabel := strings.ReplaceAll(opt.Label, "\"", "'")
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, safeLabel, sanitizeMermaidID(opt.Target)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}

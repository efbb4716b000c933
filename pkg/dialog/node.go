package dialog

import "strings"

// Kind constants classify how a node drives the conversation.
const (
	// KindMessage presents its text and advances on any acknowledgement.
	KindMessage = "message"
	// KindChoice presents its text and waits for one of its option labels.
	KindChoice = "choice"
	// KindTerminal presents its text and ends the session.
	KindTerminal = "terminal"
)

// Option is one selectable branch of a choice node.
type Option struct {
	Label  string `json:"label" yaml:"label"`
	Target string `json:"target" yaml:"target"`
}

// Node is one step of the dialogue graph.
type Node struct {
	ID   string `json:"id" yaml:"id"`
	Kind string `json:"type" yaml:"type"`

	// Messages maps a style name to the response text presented under that
	// style. The StyleBase entry is mandatory and acts as the fallback.
	Messages map[string]string `json:"messages" yaml:"messages"`

	// Options holds the selectable branches in declaration order.
	// Populated only when Kind == KindChoice.
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`

	// Next is the unconditional successor of a message node.
	Next string `json:"next_node,omitempty" yaml:"next_node,omitempty"`
}

// Text resolves the response text for the given style, falling back to the
// base entry when the node carries no variant for it.
func (n Node) Text(style string) string {
	if t, ok := n.Messages[style]; ok {
		return t
	}
	return n.Messages[StyleBase]
}

// Match returns the target of the first option matching the input.
// Labels are compared case-insensitively against the trimmed input; a label
// that prefixes the input also counts, so "yes please" selects "yes".
// Options are checked in declaration order.
func (n Node) Match(input string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}
	for _, opt := range n.Options {
		if strings.HasPrefix(in, strings.ToLower(strings.TrimSpace(opt.Label))) {
			return opt.Target, true
		}
	}
	return "", false
}

// Labels returns the option labels in declaration order.
func (n Node) Labels() []string {
	if len(n.Options) == 0 {
		return nil
	}
	labels := make([]string, len(n.Options))
	for i, opt := range n.Options {
		labels[i] = opt.Label
	}
	return labels
}

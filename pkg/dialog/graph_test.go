package dialog_test

import (
	"testing"

	"github.com/moringa-school/karibu/pkg/dialog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(id, text, next string) dialog.Node {
	return dialog.Node{
		ID:       id,
		Kind:     dialog.KindMessage,
		Messages: map[string]string{dialog.StyleBase: text},
		Next:     next,
	}
}

func choice(id, text string, opts ...dialog.Option) dialog.Node {
	return dialog.Node{
		ID:       id,
		Kind:     dialog.KindChoice,
		Messages: map[string]string{dialog.StyleBase: text},
		Options:  opts,
	}
}

func terminal(id, text string) dialog.Node {
	return dialog.Node{
		ID:       id,
		Kind:     dialog.KindTerminal,
		Messages: map[string]string{dialog.StyleBase: text},
	}
}

func TestNewGraph_Valid(t *testing.T) {
	g, err := dialog.NewGraph(
		msg("start", "Hi", "ask"),
		choice("ask", "Proceed?",
			dialog.Option{Label: "yes", Target: "yes_node"},
			dialog.Option{Label: "no", Target: "no_node"},
		),
		terminal("yes_node", "Great."),
		terminal("no_node", "Okay, bye."),
	)
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.Edges())
	assert.Equal(t, []string{"start", "ask", "yes_node", "no_node"}, g.IDs())
	assert.Equal(t, "start", g.Start().ID)

	n, ok := g.Node("ask")
	require.True(t, ok)
	assert.Equal(t, dialog.KindChoice, n.Kind)
	assert.Equal(t, []string{"yes", "no"}, n.Labels())
}

func TestNewGraph_CyclesAllowed(t *testing.T) {
	_, err := dialog.NewGraph(
		msg("start", "Hi", "loop"),
		choice("loop", "Again?",
			dialog.Option{Label: "again", Target: "start"},
			dialog.Option{Label: "stop", Target: "done"},
		),
		terminal("done", "Bye."),
	)
	assert.NoError(t, err)
}

func TestNewGraph_MissingStart(t *testing.T) {
	g, err := dialog.NewGraph(terminal("end", "Bye."))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, dialog.ErrMissingStart)
}

func TestNewGraph_EmptyGraph(t *testing.T) {
	g, err := dialog.NewGraph()
	assert.Nil(t, g)
	assert.ErrorIs(t, err, dialog.ErrMissingStart)
}

func TestNewGraph_DuplicateID(t *testing.T) {
	g, err := dialog.NewGraph(
		msg("start", "Hi", "start"),
		terminal("start", "Bye."),
	)
	assert.Nil(t, g)

	var dup *dialog.DuplicateNodeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "start", dup.ID)
}

func TestNewGraph_DanglingReference(t *testing.T) {
	tests := []struct {
		name       string
		nodes      []dialog.Node
		wantNode   string
		wantTarget string
	}{
		{
			name: "Dangling Next",
			nodes: []dialog.Node{
				msg("start", "Hi", "missing"),
			},
			wantNode:   "start",
			wantTarget: "missing",
		},
		{
			name: "Dangling Option Target",
			nodes: []dialog.Node{
				msg("start", "Hi", "ask"),
				choice("ask", "Pick", dialog.Option{Label: "a", Target: "nowhere"}),
			},
			wantNode:   "ask",
			wantTarget: "nowhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := dialog.NewGraph(tt.nodes...)
			assert.Nil(t, g)

			var dangling *dialog.DanglingReferenceError
			require.ErrorAs(t, err, &dangling)
			assert.Equal(t, tt.wantNode, dangling.NodeID)
			assert.Equal(t, tt.wantTarget, dangling.Target)
		})
	}
}

func TestNewGraph_MalformedNodes(t *testing.T) {
	tests := []struct {
		name string
		node dialog.Node
	}{
		{
			name: "Empty ID",
			node: dialog.Node{Kind: dialog.KindTerminal, Messages: map[string]string{dialog.StyleBase: "x"}},
		},
		{
			name: "Missing Base Message",
			node: dialog.Node{ID: "start", Kind: dialog.KindTerminal, Messages: map[string]string{"formal": "x"}},
		},
		{
			name: "No Messages At All",
			node: dialog.Node{ID: "start", Kind: dialog.KindTerminal},
		},
		{
			name: "Message Without Next",
			node: dialog.Node{ID: "start", Kind: dialog.KindMessage, Messages: map[string]string{dialog.StyleBase: "x"}},
		},
		{
			name: "Message With Options",
			node: dialog.Node{
				ID: "start", Kind: dialog.KindMessage,
				Messages: map[string]string{dialog.StyleBase: "x"},
				Next:     "start",
				Options:  []dialog.Option{{Label: "a", Target: "start"}},
			},
		},
		{
			name: "Choice Without Options",
			node: dialog.Node{ID: "start", Kind: dialog.KindChoice, Messages: map[string]string{dialog.StyleBase: "x"}},
		},
		{
			name: "Choice With Next",
			node: dialog.Node{
				ID: "start", Kind: dialog.KindChoice,
				Messages: map[string]string{dialog.StyleBase: "x"},
				Options:  []dialog.Option{{Label: "a", Target: "start"}},
				Next:     "start",
			},
		},
		{
			name: "Choice With Empty Label",
			node: dialog.Node{
				ID: "start", Kind: dialog.KindChoice,
				Messages: map[string]string{dialog.StyleBase: "x"},
				Options:  []dialog.Option{{Label: "", Target: "start"}},
			},
		},
		{
			name: "Terminal With Next",
			node: dialog.Node{
				ID: "start", Kind: dialog.KindTerminal,
				Messages: map[string]string{dialog.StyleBase: "x"},
				Next:     "start",
			},
		},
		{
			name: "Unknown Kind",
			node: dialog.Node{ID: "start", Kind: "banter", Messages: map[string]string{dialog.StyleBase: "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := dialog.NewGraph(tt.node)
			assert.Nil(t, g)

			var malformed *dialog.MalformedNodeError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestGraph_Unreachable(t *testing.T) {
	g, err := dialog.NewGraph(
		msg("start", "Hi", "end"),
		terminal("end", "Bye."),
		terminal("orphan", "Never shown."),
		msg("island", "Also never shown.", "orphan"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"orphan", "island"}, g.Unreachable())
}

func TestGraph_UnreachableEmptyWhenFullyConnected(t *testing.T) {
	g, err := dialog.NewGraph(
		msg("start", "Hi", "end"),
		terminal("end", "Bye."),
	)
	require.NoError(t, err)
	assert.Empty(t, g.Unreachable())
}

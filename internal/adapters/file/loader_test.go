package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moringa-school/karibu/pkg/dialog"
)

const graphJSON = `{
  "nodes": [
    {
      "id": "start",
      "type": "message",
      "messages": {
        "base": "Hello! Want to learn about Moringa?",
        "formal": "Greetings. Would you care to learn about Moringa?"
      },
      "next_node": "ask"
    },
    {
      "id": "ask",
      "type": "choice",
      "messages": {"base": "Ready to begin?"},
      "options": [
        {"label": "yes", "target": "yes_node"},
        {"label": "no", "target": "no_node"}
      ]
    },
    {"id": "yes_node", "type": "terminal", "messages": {"base": "Great!"}},
    {"id": "no_node", "type": "terminal", "messages": {"base": "Maybe next time."}}
  ]
}`

const graphYAML = `nodes:
  - id: start
    type: message
    messages:
      base: "Hello! Want to learn about Moringa?"
    next_node: ask
  - id: ask
    type: choice
    messages:
      base: "Ready to begin?"
    options:
      - label: "yes"
        target: yes_node
      - label: "no"
        target: no_node
  - id: yes_node
    type: terminal
    messages:
      base: "Great!"
  - id: no_node
    type: terminal
    messages:
      base: "Maybe next time."
`

func writeGraph(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	g, err := Load(writeGraph(t, "flow.json", graphJSON))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Len())

	start, ok := g.Node("start")
	require.True(t, ok)
	assert.Equal(t, dialog.KindMessage, start.Kind)
	assert.Equal(t, "ask", start.Next)
	assert.Equal(t, "Greetings. Would you care to learn about Moringa?", start.Text("formal"))

	ask, ok := g.Node("ask")
	require.True(t, ok)
	require.Len(t, ask.Options, 2)
	// Declaration order survives the round trip.
	assert.Equal(t, []string{"yes", "no"}, ask.Labels())
	assert.Equal(t, "yes_node", ask.Options[0].Target)
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"flow.yaml", "flow.yml"} {
		t.Run(name, func(t *testing.T) {
			g, err := Load(writeGraph(t, name, graphYAML))
			require.NoError(t, err)

			assert.Equal(t, 4, g.Len())
			ask, ok := g.Node("ask")
			require.True(t, ok)
			assert.Equal(t, []string{"yes", "no"}, ask.Labels())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Unsupported Extension", func(t *testing.T) {
		_, err := Load(writeGraph(t, "flow.toml", "nodes = []"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported graph file extension")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := Load(writeGraph(t, "flow.json", "{not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse JSON")
	})

	t.Run("Missing Start Node", func(t *testing.T) {
		doc := `{"nodes": [{"id": "lonely", "type": "terminal", "messages": {"base": "Bye"}}]}`
		_, err := Load(writeGraph(t, "flow.json", doc))
		require.Error(t, err)
		assert.ErrorIs(t, err, dialog.ErrMissingStart)
	})

	t.Run("Dangling Reference Names Path And Node", func(t *testing.T) {
		doc := `{"nodes": [
			{"id": "start", "type": "message", "messages": {"base": "Hi"}, "next_node": "ghost"}
		]}`
		path := writeGraph(t, "flow.json", doc)
		_, err := Load(path)
		require.Error(t, err)

		var dangling *dialog.DanglingReferenceError
		require.True(t, errors.As(err, &dangling))
		assert.Equal(t, "start", dangling.NodeID)
		assert.Equal(t, "ghost", dangling.Target)
		assert.Contains(t, err.Error(), path)
	})
}

func TestWatch(t *testing.T) {
	path := writeGraph(t, "flow.json", graphJSON)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	require.NoError(t, err)

	// Give the watcher goroutine a beat to arm before the write.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(graphJSON), 0o644))

	select {
	case got, ok := <-ch:
		require.True(t, ok)
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change notification")
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return // closed on cancellation
			}
		case <-deadline:
			t.Fatal("expected channel to close")
		}
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "flow.json"))
	require.Error(t, err)
}

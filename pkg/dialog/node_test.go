package dialog_test

import (
	"testing"
	"time"

	"github.com/moringa-school/karibu/pkg/dialog"
	"github.com/stretchr/testify/assert"
)

func TestNode_Text(t *testing.T) {
	n := dialog.Node{
		ID:   "greet",
		Kind: dialog.KindTerminal,
		Messages: map[string]string{
			dialog.StyleBase: "Hello.",
			"casual":         "Hey!",
		},
	}

	t.Run("Known Style", func(t *testing.T) {
		assert.Equal(t, "Hey!", n.Text("casual"))
	})

	t.Run("Fallback To Base", func(t *testing.T) {
		assert.Equal(t, "Hello.", n.Text("formal"))
	})

	t.Run("Base Itself", func(t *testing.T) {
		assert.Equal(t, "Hello.", n.Text(dialog.StyleBase))
	})
}

func TestNode_Match(t *testing.T) {
	n := dialog.Node{
		ID:   "ask",
		Kind: dialog.KindChoice,
		Options: []dialog.Option{
			{Label: "yes", Target: "yes_node"},
			{Label: "no", Target: "no_node"},
		},
	}

	tests := []struct {
		name       string
		input      string
		wantTarget string
		wantOK     bool
	}{
		{"Exact", "yes", "yes_node", true},
		{"Case Insensitive", "YES", "yes_node", true},
		{"Trimmed", "  no  ", "no_node", true},
		{"Label Prefix Of Input", "yes please", "yes_node", true},
		{"No Match", "maybe", "", false},
		{"Empty", "", "", false},
		{"Whitespace Only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := n.Match(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestNode_MatchDeclarationOrderWins(t *testing.T) {
	n := dialog.Node{
		ID:   "ask",
		Kind: dialog.KindChoice,
		Options: []dialog.Option{
			{Label: "a", Target: "first"},
			{Label: "ab", Target: "second"},
		},
	}

	// "ab" prefixes on both labels; the first declared option wins.
	target, ok := n.Match("ab")
	assert.True(t, ok)
	assert.Equal(t, "first", target)
}

func TestState_Append(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := dialog.NewState("casual", now)

	assert.Equal(t, dialog.StartID, s.CurrentNodeID)
	assert.Equal(t, "casual", s.Style)
	assert.False(t, s.Done)

	s.Append(dialog.SpeakerBot, "Hi", now)
	s.Append(dialog.SpeakerUser, "hello", now.Add(time.Second))

	assert.Len(t, s.History, 2)
	assert.Equal(t, dialog.SpeakerBot, s.History[0].Speaker)
	assert.Equal(t, "hello", s.History[1].Text)
}

func TestValidStyle(t *testing.T) {
	assert.True(t, dialog.ValidStyle("base"))
	assert.True(t, dialog.ValidStyle("playful"))
	assert.False(t, dialog.ValidStyle("sarcastic"))
	assert.False(t, dialog.ValidStyle(""))
}

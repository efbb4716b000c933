package dialog

import "time"

// Speaker identifies who produced a transcript or history entry.
type Speaker string

const (
	SpeakerBot  Speaker = "bot"
	SpeakerUser Speaker = "user"
)

// HistoryEntry is one exchanged message as the session saw it.
type HistoryEntry struct {
	Speaker Speaker
	Text    string
	At      time.Time
}

// State is the mutable half of one running conversation. The graph stays
// shared and read-only; each session owns exactly one State, mutated only by
// the engine.
type State struct {
	// CurrentNodeID is the engine's position in the graph.
	CurrentNodeID string

	// Style is the response style rolled for this session. It holds for the
	// session's whole lifetime.
	Style string

	// StartedAt anchors the transcript filename and the history timestamps.
	StartedAt time.Time

	// History mirrors the transcript: every exchanged message in order.
	History []HistoryEntry

	// Done is set once a terminal node has been presented or the user quit.
	Done bool
}

// NewState creates a session state positioned at the entry node.
func NewState(style string, startedAt time.Time) *State {
	return &State{
		CurrentNodeID: StartID,
		Style:         style,
		StartedAt:     startedAt,
	}
}

// Append records one exchanged message in the session history.
func (s *State) Append(speaker Speaker, text string, at time.Time) {
	s.History = append(s.History, HistoryEntry{Speaker: speaker, Text: text, At: at})
}

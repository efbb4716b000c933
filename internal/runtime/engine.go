// Package runtime drives one conversation over an immutable dialogue graph.
// The engine owns every state mutation; the surrounding loop only renders
// results and forwards input.
package runtime

import (
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/moringa-school/karibu/internal/logging"
	"github.com/moringa-school/karibu/pkg/dialog"
)

// QuitCommands end the session from any node. Option labels are matched
// first, so a choice node may still bind one of these words to a branch.
var QuitCommands = []string{"no", "bye", "quit", "exit"}

// Recorder receives every exchanged message as it is committed.
type Recorder interface {
	Append(speaker dialog.Speaker, text string)
}

// Result is the outcome of presenting a node or applying one input.
type Result struct {
	// Reply is the bot text to present, already style-resolved.
	Reply string

	// Done reports that the session is over once Reply (if any) has been
	// presented.
	Done bool

	// Retry reports an unmatched choice input: the state did not move and
	// Reply re-lists the options. This is the expected correction path,
	// not an error.
	Retry bool
}

// Engine is the dialogue state machine. One engine serves one session loop;
// it is not safe for concurrent use.
type Engine struct {
	graph  *dialog.Graph
	logger *slog.Logger
	rec    Recorder
	style  string // pinned style; empty rolls one per session
	rand   *rand.Rand
	now    func() time.Time
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRecorder sets the transcript sink messages are committed to.
func WithRecorder(rec Recorder) Option {
	return func(e *Engine) {
		e.rec = rec
	}
}

// WithStyle pins the session style instead of rolling one at Start.
func WithStyle(style string) Option {
	return func(e *Engine) {
		e.style = style
	}
}

// WithRand sets the source used for the style roll.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

// WithClock overrides the history timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine over a validated graph.
func NewEngine(g *dialog.Graph, opts ...Option) *Engine {
	e := &Engine{
		graph:  g,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Graph returns the underlying dialogue graph.
func (e *Engine) Graph() *dialog.Graph {
	return e.graph
}

// Start creates the session state, rolls its style, and presents the entry
// node.
func (e *Engine) Start() (*dialog.State, Result) {
	style := e.style
	if style == "" {
		style = e.rollStyle()
	}

	st := dialog.NewState(style, e.now().UTC())
	e.logger.Debug("session started", "style", style, "node_id", st.CurrentNodeID)
	return st, e.present(st)
}

// Step applies one user input to the session. On a validated graph every
// transition target exists, so stepping never fails; unmatched choice input
// is a retry, a quit command ends or redirects the session, and anything
// else acknowledges a message node.
func (e *Engine) Step(st *dialog.State, input string) Result {
	if st.Done {
		return Result{Done: true}
	}

	clean, err := SanitizeInput(input)
	if err != nil {
		e.logger.Warn("input rejected", "node_id", st.CurrentNodeID, "err", err)
		clean = ""
	}
	if clean != "" {
		e.record(st, dialog.SpeakerUser, clean)
	}

	node, _ := e.graph.Node(st.CurrentNodeID)

	// Option labels win over everything, quit commands included, so graphs
	// with explicit yes/no branches keep their meaning.
	if node.Kind == dialog.KindChoice {
		if target, ok := node.Match(clean); ok {
			e.logger.Debug("option matched", "node_id", node.ID, "target", target)
			st.CurrentNodeID = target
			return e.present(st)
		}
	}

	if isQuit(clean) {
		return e.farewell(st)
	}

	switch node.Kind {
	case dialog.KindMessage:
		st.CurrentNodeID = node.Next
		return e.present(st)
	case dialog.KindChoice:
		return e.retry(st, node)
	default:
		// Terminal nodes accept no transitions; Done was already set when
		// the node was presented.
		st.Done = true
		return Result{Done: true}
	}
}

// Reply returns the styled text the current node presents. Resolution is
// pure: repeated calls return the same text for the same session.
func (e *Engine) Reply(st *dialog.State) string {
	node, _ := e.graph.Node(st.CurrentNodeID)
	return node.Text(st.Style)
}

// present resolves the current node's styled text, commits the bot message,
// and flags completion on terminal nodes.
func (e *Engine) present(st *dialog.State) Result {
	node, ok := e.graph.Node(st.CurrentNodeID)
	if !ok {
		// Unreachable on a validated graph.
		e.logger.Error("unknown node", "node_id", st.CurrentNodeID)
		st.Done = true
		return Result{Done: true}
	}

	text := node.Text(st.Style)
	e.record(st, dialog.SpeakerBot, text)

	if node.Kind == dialog.KindTerminal {
		e.logger.Debug("terminal node reached", "node_id", node.ID)
		st.Done = true
	}
	return Result{Reply: text, Done: st.Done}
}

// retry re-presents a choice node after an input matched none of its
// options.
func (e *Engine) retry(st *dialog.State, node dialog.Node) Result {
	text := "I'm sorry, I didn't understand that. Please choose from: " + FormatLabels(node.Labels())
	e.record(st, dialog.SpeakerBot, text)
	return Result{Reply: text, Retry: true}
}

// farewell handles a quit command: jump to the farewell node when the graph
// has one, otherwise end the session on the spot.
func (e *Engine) farewell(st *dialog.State) Result {
	if e.graph.Has(dialog.FarewellID) {
		e.logger.Debug("quit command redirected", "node_id", dialog.FarewellID)
		st.CurrentNodeID = dialog.FarewellID
		return e.present(st)
	}

	e.logger.Debug("quit command ended session", "node_id", st.CurrentNodeID)
	st.Done = true
	return Result{Done: true}
}

func (e *Engine) record(st *dialog.State, speaker dialog.Speaker, text string) {
	st.Append(speaker, text, e.now().UTC())
	if e.rec != nil {
		e.rec.Append(speaker, text)
	}
}

func (e *Engine) rollStyle() string {
	if e.rand != nil {
		return dialog.Styles[e.rand.Intn(len(dialog.Styles))]
	}
	return dialog.Styles[rand.Intn(len(dialog.Styles))]
}

func isQuit(input string) bool {
	in := strings.ToLower(strings.TrimSpace(input))
	for _, cmd := range QuitCommands {
		if in == cmd {
			return true
		}
	}
	return false
}

// FormatLabels renders option labels the way the bot quotes them:
// 'a', 'b' or 'c'.
func FormatLabels(labels []string) string {
	switch len(labels) {
	case 0:
		return "No options available."
	case 1:
		return "'" + labels[0] + "'"
	}

	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = "'" + l + "'"
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

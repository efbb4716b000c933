package keyword

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Farewell is printed on quit, interrupt, or end of input.
const Farewell = "Goodbye! Happy learning!"

var ruler = strings.Repeat("=", 60)

// Session is one interactive run of the keyword bot over plain text IO.
type Session struct {
	reader  *bufio.Reader
	writer  io.Writer
	matcher *Matcher
	errlog  *ErrorLog

	// prev is the last bot message, logged alongside unknown queries for
	// context.
	prev string
}

// NewSession wires a session over the given streams. Nil streams default to
// stdin and stdout; a nil matcher uses the built-in table.
func NewSession(r io.Reader, w io.Writer, matcher *Matcher, errlog *ErrorLog) *Session {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	if matcher == nil {
		matcher = NewMatcher(nil)
	}
	if errlog == nil {
		errlog = NewErrorLog("")
	}
	return &Session{
		reader:  bufio.NewReader(r),
		writer:  w,
		matcher: matcher,
		errlog:  errlog,
	}
}

// Run drives the prompt loop until the user quits or input ends.
func (s *Session) Run() error {
	fmt.Fprintln(s.writer, ruler)
	fmt.Fprintln(s.writer, "Moringa School Courses Chatbot")
	fmt.Fprintln(s.writer, ruler)
	fmt.Fprintln(s.writer, "Type 'hello' to start, 'help' for assistance, or 'quit' to exit.")
	fmt.Fprintln(s.writer)

	for {
		fmt.Fprint(s.writer, "You: ")

		line, err := s.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Fprintf(s.writer, "\nBot: %s\n", Farewell)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit":
			fmt.Fprintf(s.writer, "Bot: %s\n", Farewell)
			return nil
		}

		response, ok := s.matcher.Match(input)
		if !ok {
			s.errlog.Record(input, s.prev)
			response = UnknownResponse
		}

		fmt.Fprintf(s.writer, "Bot: %s\n\n", response)
		s.prev = response
	}
}

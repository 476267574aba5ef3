package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/automaton"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// errQuit stops the command loop without reporting an error.
var errQuit = errors.New("quit")

// Session is one run of the terminal editor: it reads commands line by line
// and applies them to an Editor. It replaces the window event loop of a
// graphical editor, so it only ever calls the public Editor API.
type Session struct {
	ID          string
	editor      *turing.Editor
	out         io.Writer
	logger      *slog.Logger
	render      tui.Renderer
	stats       prometheus.Gatherer
	interactive bool
}

// SessionOption defines configuration for Session.
type SessionOption func(*Session)

// WithSessionLogger sets the structured logger.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithSessionRenderer sets the markdown renderer used by "show".
func WithSessionRenderer(r tui.Renderer) SessionOption {
	return func(s *Session) {
		s.render = r
	}
}

// WithSessionStats exposes the gatherer printed by "stats".
func WithSessionStats(g prometheus.Gatherer) SessionOption {
	return func(s *Session) {
		s.stats = g
	}
}

// WithInteractive enables the prompt.
func WithInteractive(interactive bool) SessionOption {
	return func(s *Session) {
		s.interactive = interactive
	}
}

// NewSession creates a session writing to out.
func NewSession(ed *turing.Editor, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		editor: ed,
		out:    out,
		logger: logging.NewNop(),
		render: tui.PlainRenderer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.ID)
	return s
}

// inputResult is one line read from the session input.
type inputResult struct {
	text string
	err  error
}

// Run executes commands from in until EOF, "quit" or ctx is cancelled.
// Command errors are printed and the loop continues; only I/O errors and
// cancellation end it with an error. Lines are read by a separate goroutine
// so a cancelled ctx returns immediately even while waiting for input.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.logger.Info("Session started")

	lines := make(chan inputResult)
	done := make(chan struct{})
	defer close(done)
	go pump(in, lines, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.interactive {
			fmt.Fprint(s.out, "> ")
		}

		var line string
		select {
		case <-ctx.Done():
			// Cancelled while waiting for input; leave without output.
			return ctx.Err()
		case res, ok := <-lines:
			if !ok {
				s.logger.Info("Session ended", "reason", "eof")
				return nil
			}
			if res.err != nil {
				return fmt.Errorf("input error: %w", res.err)
			}
			line = res.text
		}

		err := s.Exec(ctx, line)
		if errors.Is(err, errQuit) {
			s.logger.Info("Session ended", "reason", "quit")
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, tui.Error(s.out, "error: "+err.Error()))
		}
	}
}

// pump reads in line by line into lines until EOF, a read error or done.
// A clean EOF closes lines; a read error is sent before closing.
func pump(in io.Reader, lines chan<- inputResult, done <-chan struct{}) {
	defer close(lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- inputResult{text: scanner.Text()}:
		case <-done:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case lines <- inputResult{err: err}:
		case <-done:
		}
	}
}

// Exec runs a single command line. Blank lines and lines starting with '#' are ignored.
func (s *Session) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	name, rest := cut(line)
	s.logger.Debug("Command", "name", name)

	switch name {
	case "state", "s":
		return s.cmdState(ctx, rest)
	case "edge", "e":
		return s.cmdEdge(ctx, rest)
	case "current":
		return s.cmdCurrent(ctx, rest)
	case "ls":
		return s.cmdList()
	case "show":
		return s.cmdShow(rest)
	case "check":
		return s.cmdCheck(rest)
	case "graph":
		_, err := fmt.Fprint(s.out, graph.GenerateMermaid(s.editor.Inspect()))
		return err
	case "alphabet":
		_, err := fmt.Fprintln(s.out, s.editor.Alphabet().String())
		return err
	case "stats":
		if s.stats == nil {
			return errors.New("stats are not enabled")
		}
		return writeStats(s.out, s.stats)
	case "help", "?":
		_, err := fmt.Fprint(s.out, helpText)
		return err
	case "quit", "exit", "q":
		return errQuit
	}
	return fmt.Errorf("unknown command %q (try 'help')", name)
}

const helpText = `Commands:
  state [<name> [x y]]      add a state (at x,y); the name defaults to q<id>
  edge <from> <to> <rule>   add a transition, e.g. edge q0 q1 0/1,R | 1/0,L
  current [<state>|none]    show or set the current state
  ls                        list states and transitions
  show <state>              show the rule table of a state
  check [<state>]           report unreachable states and overlapping reads
  graph                     print the graph as a Mermaid diagram
  alphabet                  print the alphabet
  stats                     print edit counters
  quit                      leave the editor
A <state> is a unique name or #<id>.
`

func (s *Session) cmdState(ctx context.Context, args string) error {
	fields := strings.Fields(args)
	switch len(fields) {
	case 0:
		// Quick add: name the state after the id it is about to get.
		fields = []string{"q" + strconv.Itoa(s.editor.Automaton().Len())}
	case 1, 3:
	default:
		return errors.New("usage: state [<name> [x y]]")
	}

	var pos domain.Position
	if len(fields) == 3 {
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("invalid x %q", fields[1])
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("invalid y %q", fields[2])
		}
		pos = domain.Position{X: x, Y: y}
	}

	st := s.editor.AddState(ctx, fields[0], pos)
	_, err := fmt.Fprintf(s.out, "Added state %s (#%d) at (%g, %g)\n", st.Name(), st.ID(), pos.X, pos.Y)
	return err
}

func (s *Session) cmdEdge(ctx context.Context, args string) error {
	fromRef, rest := cut(args)
	toRef, ruleText := cut(rest)
	ruleText = unquote(ruleText)
	if fromRef == "" || toRef == "" || ruleText == "" {
		return errors.New("usage: edge <from> <to> <rule>")
	}

	from, err := s.resolve(fromRef)
	if err != nil {
		return err
	}
	to, err := s.resolve(toRef)
	if err != nil {
		return err
	}

	t, err := s.editor.AddTransition(ctx, from, to, ruleText)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.out, "Added transition %s -> %s (%d reads)\n", from.Name(), t.Target().Name(), len(t.Rules()))
	return err
}

func (s *Session) cmdCurrent(ctx context.Context, args string) error {
	ref := strings.TrimSpace(args)
	if ref == "" {
		cur := s.editor.Automaton().Current()
		if cur == nil {
			_, err := fmt.Fprintln(s.out, "No current state.")
			return err
		}
		_, err := fmt.Fprintf(s.out, "Current state: %s (#%d)\n", cur.Name(), cur.ID())
		return err
	}

	var target *automaton.State
	if ref != "none" {
		st, err := s.resolve(ref)
		if err != nil {
			return err
		}
		target = st
	}
	if err := s.editor.SetCurrent(ctx, target); err != nil {
		return err
	}
	if target == nil {
		_, err := fmt.Fprintln(s.out, "Current state cleared.")
		return err
	}
	_, err := fmt.Fprintf(s.out, "Current state: %s (#%d)\n", target.Name(), target.ID())
	return err
}

func (s *Session) cmdList() error {
	views := s.editor.Inspect()
	if len(views) == 0 {
		_, err := fmt.Fprintln(s.out, "No states.")
		return err
	}

	for _, v := range views {
		marker := " "
		if v.Current {
			marker = "*"
		}
		if _, err := fmt.Fprintf(s.out, "%s #%d %s (%g, %g)\n", marker, v.ID, v.Name, v.Position.X, v.Position.Y); err != nil {
			return err
		}
		for _, t := range v.Transitions {
			if _, err := fmt.Fprintf(s.out, "    -> %s (#%d): %s\n", t.TargetName, t.TargetID, t.Rule); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) cmdShow(args string) error {
	ref := strings.TrimSpace(args)
	if ref == "" {
		return errors.New("usage: show <state>")
	}
	st, err := s.resolve(ref)
	if err != nil {
		return err
	}

	view := s.editor.Inspect()[st.ID()]
	rendered, err := s.render(tui.RulesMarkdown(view, s.editor.Alphabet()))
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	_, err = fmt.Fprint(s.out, rendered)
	return err
}

func (s *Session) cmdCheck(args string) error {
	var start *automaton.State
	if ref := strings.TrimSpace(args); ref != "" {
		st, err := s.resolve(ref)
		if err != nil {
			return err
		}
		start = st
	}
	if err := validator.ValidateGraph(s.editor.Automaton(), start); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out, "No problems found.")
	return err
}

// resolve finds a state by "#id" or by a name that only one state has.
func (s *Session) resolve(ref string) (*automaton.State, error) {
	a := s.editor.Automaton()

	if idText, ok := strings.CutPrefix(ref, "#"); ok {
		id, err := strconv.Atoi(idText)
		if err != nil {
			return nil, fmt.Errorf("invalid state id %q", ref)
		}
		st, found := a.Lookup(id)
		if !found {
			return nil, fmt.Errorf("no state with id %d", id)
		}
		return st, nil
	}

	matches := a.Find(ref)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("unknown state %q", ref)
	case 1:
		return matches[0], nil
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = "#" + strconv.Itoa(m.ID())
	}
	return nil, fmt.Errorf("state name %q is ambiguous, use one of %s", ref, strings.Join(ids, ", "))
}

// cut splits off the first whitespace separated word.
func cut(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

package turing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/turing/pkg/automaton"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rule"
)

// Editor is the high-level entry point for the turing library.
// It wraps an automaton, fires lifecycle hooks and logs every change.
// An Editor is not safe for concurrent use.
type Editor struct {
	automaton *automaton.Automaton
	hooks     domain.Hooks
	logger    *slog.Logger
	Name      string
}

// Option defines a functional option for configuring the Editor.
type Option func(*Editor)

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Editor) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the editor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithName labels the automaton in logs and events.
func WithName(name string) Option {
	return func(e *Editor) {
		e.Name = name
	}
}

// New creates an Editor for an empty automaton over the given alphabet.
// Every character of alphabet is one tape symbol.
func New(alphabet string, opts ...Option) (*Editor, error) {
	a, err := domain.NewAlphabet(alphabet)
	if err != nil {
		return nil, fmt.Errorf("failed to create editor: %w", err)
	}

	ed := &Editor{
		automaton: automaton.New(a),
	}
	for _, opt := range opts {
		opt(ed)
	}

	if ed.logger == nil {
		ed.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if ed.Name != "" {
		ed.logger = ed.logger.With("automaton", ed.Name)
	}

	return ed, nil
}

// Automaton returns the underlying graph for read access.
// Mutations should go through the Editor so hooks fire.
func (e *Editor) Automaton() *automaton.Automaton {
	return e.automaton
}

// Alphabet returns the alphabet rules are checked against.
func (e *Editor) Alphabet() domain.Alphabet {
	return e.automaton.Alphabet()
}

// AddState appends a state at pos. It never fails; names may repeat.
func (e *Editor) AddState(ctx context.Context, name string, pos domain.Position) *automaton.State {
	s := e.automaton.AddState(name, pos)
	e.logger.Debug("State added", "state_id", s.ID(), "name", name, "x", pos.X, "y", pos.Y)

	if e.hooks.OnStateAdded != nil {
		e.hooks.OnStateAdded(ctx, &domain.StateEvent{
			EventBase: e.event(domain.EventStateAdded),
			StateID:   s.ID(),
			StateName: s.Name(),
		})
	}
	return s
}

// AddTransition parses input and attaches the resulting transition from -> to.
// A malformed rule returns a *rule.ParseError and leaves from unchanged.
func (e *Editor) AddTransition(ctx context.Context, from, to *automaton.State, input string) (*automaton.Transition, error) {
	t, err := e.automaton.Connect(from, to, input)
	if err != nil {
		var perr *rule.ParseError
		if errors.As(err, &perr) {
			e.logger.Info("Rule rejected", "from", from.ID(), "to", to.ID(), "rule", input, "error", err)
			if e.hooks.OnRuleRejected != nil {
				e.hooks.OnRuleRejected(ctx, &domain.RuleRejectedEvent{
					EventBase: e.event(domain.EventRuleRejected),
					FromID:    from.ID(),
					ToID:      to.ID(),
					Rule:      input,
					Reason:    perr.Code(),
					Err:       err,
				})
			}
		}
		return nil, err
	}

	reads := len(t.Rules())
	e.logger.Debug("Transition added", "from", from.ID(), "to", to.ID(), "rule", input, "reads", reads)
	if e.hooks.OnTransitionAdded != nil {
		e.hooks.OnTransitionAdded(ctx, &domain.TransitionEvent{
			EventBase: e.event(domain.EventTransitionAdded),
			FromID:    from.ID(),
			ToID:      to.ID(),
			Rule:      input,
			Reads:     reads,
		})
	}
	return t, nil
}

// SetCurrent marks s as the active state, or clears it when s is nil.
func (e *Editor) SetCurrent(ctx context.Context, s *automaton.State) error {
	if err := e.automaton.SetCurrent(s); err != nil {
		return err
	}

	evt := &domain.StateEvent{EventBase: e.event(domain.EventCurrentChanged), StateID: -1}
	if s != nil {
		evt.StateID = s.ID()
		evt.StateName = s.Name()
	}
	e.logger.Debug("Current state changed", "state_id", evt.StateID)
	if e.hooks.OnCurrentChanged != nil {
		e.hooks.OnCurrentChanged(ctx, evt)
	}
	return nil
}

// Inspect returns a snapshot of every state for renderers and encoders.
func (e *Editor) Inspect() []domain.StateView {
	return Snapshot(e.automaton)
}

// Snapshot converts an automaton into flat views, in state order.
func Snapshot(a *automaton.Automaton) []domain.StateView {
	current := a.Current()
	states := a.States()
	views := make([]domain.StateView, 0, len(states))

	for _, s := range states {
		view := domain.StateView{
			ID:       s.ID(),
			Name:     s.Name(),
			Position: s.Position(),
			Current:  s == current,
		}
		for _, t := range s.Transitions() {
			view.Transitions = append(view.Transitions, domain.TransitionView{
				TargetID:   t.Target().ID(),
				TargetName: t.Target().Name(),
				Rule:       t.Rule(),
				Rules:      t.Rules(),
			})
		}
		views = append(views, view)
	}
	return views
}

func (e *Editor) event(typ domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      typ,
		Automaton: e.Name,
	}
}

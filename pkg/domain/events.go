package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStateAdded      EventType = "state_added"
	EventTransitionAdded EventType = "transition_added"
	EventRuleRejected    EventType = "rule_rejected"
	EventCurrentChanged  EventType = "current_changed"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton,omitempty"`
}

// StateEvent is emitted when a state is added or becomes current.
// StateID is -1 when the current state is cleared.
type StateEvent struct {
	EventBase
	StateID   int    `json:"state_id"`
	StateName string `json:"state_name"`
}

// TransitionEvent is emitted after a transition has been attached to a state.
type TransitionEvent struct {
	EventBase
	FromID int    `json:"from_id"`
	ToID   int    `json:"to_id"`
	Rule   string `json:"rule"`
	Reads  int    `json:"reads"`
}

// RuleRejectedEvent is emitted when a rule string fails to parse.
// Reason is a short, stable token suitable as a metric label.
type RuleRejectedEvent struct {
	EventBase
	FromID int    `json:"from_id"`
	ToID   int    `json:"to_id"`
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

// Hooks defines callbacks for editor observability.
// Any field may be nil.
type Hooks struct {
	OnStateAdded      func(context.Context, *StateEvent)
	OnTransitionAdded func(context.Context, *TransitionEvent)
	OnRuleRejected    func(context.Context, *RuleRejectedEvent)
	OnCurrentChanged  func(context.Context, *StateEvent)
}

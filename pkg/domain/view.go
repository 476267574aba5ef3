package domain

// StateView is a read-only snapshot of a state, shaped for renderers and encoders.
type StateView struct {
	ID          int              `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Position    Position         `json:"position" yaml:"position"`
	Current     bool             `json:"current,omitempty" yaml:"current,omitempty"`
	Transitions []TransitionView `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// TransitionView is a read-only snapshot of one outgoing transition.
type TransitionView struct {
	TargetID   int       `json:"target_id" yaml:"target_id"`
	TargetName string    `json:"target_name" yaml:"target_name"`
	Rule       string    `json:"rule" yaml:"rule"`
	Rules      RuleTable `json:"-" yaml:"-"`
}

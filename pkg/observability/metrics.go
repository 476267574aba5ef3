package observability

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts graph edits.
type Metrics struct {
	StatesAdded      prometheus.Counter
	TransitionsAdded prometheus.Counter
	RulesRejected    *prometheus.CounterVec
}

// NewMetrics creates the editor counters and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		StatesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turing_states_added_total",
			Help: "Total number of states added to the automaton",
		}),
		TransitionsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turing_transitions_added_total",
			Help: "Total number of transitions attached to states",
		}),
		RulesRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_rules_rejected_total",
				Help: "Total number of rule strings rejected by the parser",
			},
			[]string{"reason"},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.StatesAdded, m.TransitionsAdded, m.RulesRejected} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Hooks returns editor hooks that record into m.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnStateAdded: func(context.Context, *domain.StateEvent) {
			m.StatesAdded.Inc()
		},
		OnTransitionAdded: func(context.Context, *domain.TransitionEvent) {
			m.TransitionsAdded.Inc()
		},
		OnRuleRejected: func(_ context.Context, e *domain.RuleRejectedEvent) {
			m.RulesRejected.WithLabelValues(e.Reason).Inc()
		},
	}
}

package observability

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// Chain combines several hook sets into one. Hooks run in the given order.
func Chain(sets ...domain.Hooks) domain.Hooks {
	return domain.Hooks{
		OnStateAdded: func(ctx context.Context, e *domain.StateEvent) {
			for _, h := range sets {
				if h.OnStateAdded != nil {
					h.OnStateAdded(ctx, e)
				}
			}
		},
		OnTransitionAdded: func(ctx context.Context, e *domain.TransitionEvent) {
			for _, h := range sets {
				if h.OnTransitionAdded != nil {
					h.OnTransitionAdded(ctx, e)
				}
			}
		},
		OnRuleRejected: func(ctx context.Context, e *domain.RuleRejectedEvent) {
			for _, h := range sets {
				if h.OnRuleRejected != nil {
					h.OnRuleRejected(ctx, e)
				}
			}
		},
		OnCurrentChanged: func(ctx context.Context, e *domain.StateEvent) {
			for _, h := range sets {
				if h.OnCurrentChanged != nil {
					h.OnCurrentChanged(ctx, e)
				}
			}
		},
	}
}

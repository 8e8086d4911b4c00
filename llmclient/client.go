package llmclient

import (
	"context"
	"time"

	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/tools"
)

// Client is the capability the arbiter's WaitingForLlm/ExecutingLlm states
// consume. Implementations must respect ctx cancellation and should treat
// budgetMs as a soft deadline for their own internal request, not just rely
// on the caller's context — the arbiter applies its own timeout on top.
type Client interface {
	Plan(ctx context.Context, snapshot perception.WorldSnapshot, budgetMs int64) (tools.PlanIntent, error)
}

// ClientFunc adapts a plain function to the Client interface.
type ClientFunc func(ctx context.Context, snapshot perception.WorldSnapshot, budgetMs int64) (tools.PlanIntent, error)

// Plan calls f.
func (f ClientFunc) Plan(ctx context.Context, snapshot perception.WorldSnapshot, budgetMs int64) (tools.PlanIntent, error) {
	return f(ctx, snapshot, budgetMs)
}

// WithBudget derives a context that expires after budgetMs, so a Client
// implementation that ignores its budget parameter still gets cut off by
// ctx.Done() at the caller's boundary.
func WithBudget(parent context.Context, budgetMs int64) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, time.Duration(budgetMs)*time.Millisecond)
}

// Package llmclient defines the async LLM planning capability consumed by
// the arbiter: plan(snapshot, budget_ms) -> PlanIntent.
// The interface is intentionally opaque about transport — concrete
// providers live in subpackages (llmclient/anthropic) so the core never
// imports a provider SDK directly.
package llmclient

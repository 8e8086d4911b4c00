// Package orchestrator implements the three synchronous plan proposers:
// Rule, Utility, and GOAP. Each converts a
// perception.WorldSnapshot into a tools.PlanIntent without ever touching
// the world directly — every orchestrator output is a proposal that must
// still pass through the sandbox validator before it can take effect. The
// async LLM variant lives in package llmclient, since it carries a
// materially different (cancellable, budgeted) call shape.
package orchestrator

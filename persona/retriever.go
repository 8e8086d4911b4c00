package persona

// Retriever is the external memory/RAG collaborator the LLM orchestrator
// consumes. The core treats it as opaque: it must be
// side-effect-free from the core's perspective and bounded-latency, with
// callers enforcing their own timeout via
// context — Retriever itself takes no context because it promises not to
// block on anything the caller's deadline wouldn't already cover.
type Retriever interface {
	// RetrieveContext returns up to budgetTokens worth of relevant context
	// for query. An empty string is a valid "nothing relevant" answer.
	RetrieveContext(query string, budgetTokens int) string
}

// RetrieverFunc adapts a plain function to Retriever.
type RetrieverFunc func(query string, budgetTokens int) string

// RetrieveContext calls f.
func (f RetrieverFunc) RetrieveContext(query string, budgetTokens int) string {
	return f(query, budgetTokens)
}

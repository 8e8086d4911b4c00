// Package persona implements the memory/RAG adapter interface the LLM
// orchestrator consumes plus a companion persona manager
// supplementing it: a profile of facts and episodes, capped working-memory
// capacity, and a deterministic local Retriever implementation good enough
// to exercise the interface without a real embeddings backend wired in.
package persona

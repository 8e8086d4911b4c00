// Package config loads and validates the AstraWeave TOML configuration
// covering scheduler tick rate, weave budgets, tool constraints, LLM
// arbiter deadlines, persona working memory, and persistence paths.
package config

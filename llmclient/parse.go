package llmclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/astraweave-go/astraweave/tools"
)

// ParsePlanIntent decodes an LLM's raw text response into a PlanIntent,
// rejecting anything that doesn't parse. Real models routinely wrap JSON
// in code fences or prepend a UTF-8 BOM; both are stripped before parsing
// rather than folded into a streaming parser state machine (open question,
// resolved toward the simpler fixed preprocessing step).
func ParsePlanIntent(raw string) (tools.PlanIntent, error) {
	cleaned := stripBOM(raw)
	cleaned = stripCodeFence(cleaned)
	cleaned = strings.TrimSpace(cleaned)

	var intent tools.PlanIntent
	if err := json.Unmarshal([]byte(cleaned), &intent); err != nil {
		return tools.PlanIntent{}, fmt.Errorf("llmclient: parse plan intent: %w", err)
	}
	return intent, nil
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "﻿")
}

// stripCodeFence removes a single leading/trailing ``` or ```json fence,
// if present, leaving the JSON payload on its own.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:]
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

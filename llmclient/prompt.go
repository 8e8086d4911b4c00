package llmclient

import (
	"fmt"
	"sort"
	"strings"

	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/tools"
)

// BuildPrompt serializes a snapshot and the registered tool verbs into a
// compact plain-text prompt. The LLM sees only registered tool names and
// snapshot fields — never raw world state, internal entity
// bookkeeping, or other agents' private data.
func BuildPrompt(snapshot perception.WorldSnapshot, verbs []tools.Verb) string {
	names := make([]string, len(verbs))
	for i, v := range verbs {
		names[i] = string(v)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d\n", snapshot.T)
	fmt.Fprintf(&b, "self: ammo=%d pos=(%d,%d) morale=%.2f\n",
		snapshot.Me.Ammo, snapshot.Me.Pos.X, snapshot.Me.Pos.Y, snapshot.Me.Morale)
	fmt.Fprintf(&b, "player: hp=%d pos=(%d,%d) stance=%d\n",
		snapshot.Player.HP, snapshot.Player.Pos.X, snapshot.Player.Pos.Y, snapshot.Player.Stance)
	if snapshot.HasObjective {
		fmt.Fprintf(&b, "objective: %s\n", snapshot.Objective)
	}
	for _, e := range snapshot.Enemies {
		fmt.Fprintf(&b, "enemy id=%d pos=(%d,%d) hp=%d cover=%t\n", e.ID, e.Pos.X, e.Pos.Y, e.HP, e.Cover)
	}
	fmt.Fprintf(&b, "available tools: %s\n", strings.Join(names, ", "))
	b.WriteString("Respond with a single JSON object: {\"plan_id\":string,\"steps\":[...]}.\n")
	b.WriteString("Use only the tools listed above. No commentary outside the JSON.\n")
	return b.String()
}

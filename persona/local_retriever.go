package persona

import "strings"

// LocalRetriever is a deterministic, in-process Retriever over a Profile's
// Facts: it returns every fact whose key or value contains a query word,
// joined until the token budget (approximated as whitespace-separated
// words) is exhausted. It exists to exercise the Retriever interface
// without depending on a real embeddings/vector-store backend; production
// deployments wire in a proper RAG pipeline behind the same interface.
type LocalRetriever struct {
	Profile *Profile
}

// RetrieveContext implements Retriever.
func (r LocalRetriever) RetrieveContext(query string, budgetTokens int) string {
	if r.Profile == nil || budgetTokens <= 0 {
		return ""
	}
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return ""
	}

	var matched []string
	for _, f := range r.Profile.Facts {
		haystack := strings.ToLower(f.Key + " " + f.Value)
		for _, w := range words {
			if strings.Contains(haystack, w) {
				matched = append(matched, f.Key+": "+f.Value)
				break
			}
		}
	}

	var out []string
	tokens := 0
	for _, line := range matched {
		lineTokens := len(strings.Fields(line))
		if tokens+lineTokens > budgetTokens {
			break
		}
		out = append(out, line)
		tokens += lineTokens
	}
	return strings.Join(out, "\n")
}

package persona_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraweave-go/astraweave/persona"
)

func TestRememberEvictsOldestAtCapacity(t *testing.T) {
	profile := persona.NewProfile("companion_1", persona.Persona{Name: "Echo"})
	mgr := persona.NewManager(profile)
	mgr.WorkingCapacity = 2

	mgr.Remember(persona.Episode{Title: "first", Summary: "met the player"})
	mgr.Remember(persona.Episode{Title: "second", Summary: "found a shard"})
	require.Len(t, profile.Episodes, 2)

	mgr.Remember(persona.Episode{Title: "third", Summary: "fought a sentinel"})
	require.Len(t, profile.Episodes, 2)
	assert.Equal(t, "second", profile.Episodes[0].Title)
	assert.Equal(t, "third", profile.Episodes[1].Title)

	require.Len(t, profile.Facts, 1)
	assert.Equal(t, "first", profile.Facts[0].Key)
}

func TestRetrieveContextEmptyWithoutRetriever(t *testing.T) {
	mgr := persona.NewManager(persona.NewProfile("c1", persona.Persona{}))
	assert.Equal(t, "", mgr.RetrieveContext("anything", 100))
}

func TestRetrieveContextDelegatesToRetriever(t *testing.T) {
	mgr := persona.NewManager(persona.NewProfile("c1", persona.Persona{}))
	mgr.Retriever = persona.RetrieverFunc(func(query string, budget int) string {
		return "ctx:" + query
	})
	assert.Equal(t, "ctx:hello", mgr.RetrieveContext("hello", 10))
}

func TestSystemPromptIncludesPersonaAndContext(t *testing.T) {
	profile := persona.NewProfile("c1", persona.Persona{Name: "Echo", Voice: "wry", Tone: "calm", Backstory: "a rift-born companion."})
	mgr := persona.NewManager(profile)
	mgr.Retriever = persona.RetrieverFunc(func(string, int) string { return "the player likes apples" })

	prompt := mgr.SystemPrompt("what do they like", 50)
	assert.Contains(t, prompt, "Echo")
	assert.Contains(t, prompt, "Context:")
	assert.Contains(t, prompt, "apples")
}

func TestDistillTurnsEpisodesIntoFacts(t *testing.T) {
	profile := persona.NewProfile("c1", persona.Persona{})
	profile.Episodes = []persona.Episode{{Title: "t1", Summary: "s1"}, {Title: "t2", Summary: "s2"}}

	profile.Distill()
	require.Len(t, profile.Facts, 2)
	assert.Equal(t, "t1", profile.Facts[0].Key)
	assert.Equal(t, "s2", profile.Facts[1].Value)
}

// Package anthropic provides an llmclient.Client implementation backed by
// the Anthropic Claude Messages API, narrowing the SDK's general chat
// surface down to the single plan(snapshot, budget_ms) -> PlanIntent
// capability the arbiter needs.
package anthropic

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/astraweave-go/astraweave/llmclient"
	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/tools"
)

// MessagesClient captures the subset of the Anthropic SDK client the
// adapter uses, so tests can substitute a fake in place of *sdk.MessageService.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Options configures the adapter.
type Options struct {
	// Model is the Claude model identifier to request.
	Model string
	// MaxTokens caps the completion length. Required, must be positive.
	MaxTokens int
	// Registry supplies the verb list advertised in the prompt; only
	// registered verbs are ever mentioned to the model.
	Registry *tools.Registry
}

// Client implements llmclient.Client on top of Anthropic Claude Messages.
type Client struct {
	msg       MessagesClient
	model     string
	maxTokens int
	verbs     []tools.Verb
}

// New builds an anthropic-backed llmclient.Client.
func New(msg MessagesClient, opts Options) (*Client, error) {
	if msg == nil {
		return nil, errors.New("anthropic llmclient: messages client is required")
	}
	if opts.Model == "" {
		return nil, errors.New("anthropic llmclient: model identifier is required")
	}
	if opts.MaxTokens <= 0 {
		return nil, errors.New("anthropic llmclient: max tokens must be positive")
	}
	if opts.Registry == nil {
		return nil, errors.New("anthropic llmclient: tool registry is required")
	}
	return &Client{
		msg:       msg,
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
		verbs:     opts.Registry.Verbs(),
	}, nil
}

// NewFromAPIKey constructs a client using the default Anthropic HTTP
// transport, authenticated with apiKey. An empty apiKey is an error; the
// environment is not consulted for a fallback key.
func NewFromAPIKey(apiKey string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic llmclient: api key is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return New(&ac.Messages, opts)
}

var _ llmclient.Client = (*Client)(nil)

// Plan sends the snapshot as a compact prompt, enforces budgetMs as a
// request deadline, and parses the response back into a PlanIntent. A
// schema or parse failure is returned as an error so the arbiter can count
// it as an llm_timeouts/fallback event rather than silently producing an
// empty plan.
func (c *Client) Plan(ctx context.Context, snapshot perception.WorldSnapshot, budgetMs int64) (tools.PlanIntent, error) {
	ctx, cancel := llmclient.WithBudget(ctx, budgetMs)
	defer cancel()

	prompt := llmclient.BuildPrompt(snapshot, c.verbs)
	params := sdk.MessageNewParams{
		MaxTokens: int64(c.maxTokens),
		Model:     sdk.Model(c.model),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	}

	msg, err := c.msg.New(ctx, params)
	if err != nil {
		return tools.PlanIntent{}, fmt.Errorf("anthropic llmclient: messages.new: %w", err)
	}

	text, err := firstText(msg)
	if err != nil {
		return tools.PlanIntent{}, err
	}
	return llmclient.ParsePlanIntent(text)
}

func firstText(msg *sdk.Message) (string, error) {
	if msg == nil {
		return "", errors.New("anthropic llmclient: response message is nil")
	}
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", errors.New("anthropic llmclient: response contained no text block")
}

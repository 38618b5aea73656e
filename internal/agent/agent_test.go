package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-research/internal/llm"
)

// fakeClient records the prompt it receives and replies with a fixed answer.
type fakeClient struct {
	prompt string
	answer string
	err    error
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.answer, f.err
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.answer, f.err
}

func (f *fakeClient) GetModel(tier llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func TestExecute_GathersEvidenceBeforeCompletion(t *testing.T) {
	var called []string
	tool := FuncTool{
		ToolName: "search_brand_info",
		Fn: func(ctx context.Context, input string) string {
			called = append(called, input)
			return "evidence for " + input
		},
	}

	client := &fakeClient{answer: `{"name": "Acme"}`}
	a := &Agent{
		Role:   "a brand research analyst",
		Goal:   "profile the brand",
		Client: client,
		Tier:   llm.TierStandard,
	}

	result, err := a.Execute(context.Background(), Task{
		Description:    "Research the brand Acme.",
		ExpectedOutput: "A JSON object with a name field.",
		Invocations: []Invocation{
			{Tool: tool, Input: "Acme company"},
			{Tool: tool, Input: "Acme reviews"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"name": "Acme"}`, result)
	assert.Equal(t, []string{"Acme company", "Acme reviews"}, called)

	assert.Contains(t, client.prompt, "You are a brand research analyst.")
	assert.Contains(t, client.prompt, "## Task")
	assert.Contains(t, client.prompt, "Research the brand Acme.")
	assert.Contains(t, client.prompt, "### search_brand_info(Acme company)")
	assert.Contains(t, client.prompt, "evidence for Acme reviews")
	assert.Contains(t, client.prompt, "## Expected Output")
}

func TestExecute_NoInvocationsOmitsEvidenceSection(t *testing.T) {
	client := &fakeClient{answer: `{}`}
	a := &Agent{Role: "an analyst", Client: client}

	_, err := a.Execute(context.Background(), Task{Description: "Do something."})
	require.NoError(t, err)
	assert.NotContains(t, client.prompt, "## Gathered Evidence")
}

func TestExecute_ToolFailureTextStillReachesModel(t *testing.T) {
	tool := FuncTool{
		ToolName: "fetch_website_content",
		Fn: func(ctx context.Context, input string) string {
			return "Fallback HTTP error: connection refused"
		},
	}

	client := &fakeClient{answer: `{}`}
	a := &Agent{Role: "an analyst", Client: client}

	_, err := a.Execute(context.Background(), Task{
		Description: "Research.",
		Invocations: []Invocation{{Tool: tool, Input: "acme.com"}},
	})

	require.NoError(t, err, "tool failures degrade evidence, they do not abort the task")
	assert.Contains(t, client.prompt, "Fallback HTTP error: connection refused")
}

func TestExecute_LLMErrorPropagates(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("quota exceeded")}
	a := &Agent{Role: "an analyst", Client: client}

	_, err := a.Execute(context.Background(), Task{Description: "Research."})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestExecute_NilClient(t *testing.T) {
	a := &Agent{Role: "an analyst"}
	_, err := a.Execute(context.Background(), Task{Description: "Research."})
	assert.Error(t, err)
}

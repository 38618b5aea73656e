package research

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchProduct_Success(t *testing.T) {
	client := &fakeLLM{answer: `{
		"name": "GlowSerum Vitamin C",
		"brand": "GlowCo",
		"price": "$24.99",
		"ingredients": ["vitamin c", "hyaluronic acid"],
		"sub_category": null
	}`}

	svc := newTestService(t, client, nil)
	info := svc.ResearchProduct(context.Background(), "GlowSerum")

	assert.Equal(t, "GlowSerum Vitamin C", info.Name)
	require.NotNil(t, info.Brand)
	assert.Equal(t, "GlowCo", *info.Brand)
	require.NotNil(t, info.Price)
	assert.Equal(t, "$24.99", *info.Price)
	assert.Equal(t, []string{"vitamin c", "hyaluronic acid"}, info.Ingredients)
	assert.Nil(t, info.SubCategory)
}

func TestResearchProduct_EmptyNameFallsBackToInput(t *testing.T) {
	client := &fakeLLM{answer: `{"brand": "GlowCo"}`}
	svc := newTestService(t, client, nil)

	info := svc.ResearchProduct(context.Background(), "GlowSerum")
	assert.Equal(t, "GlowSerum", info.Name)
}

func TestResearchProduct_SearchEvidenceInPrompt(t *testing.T) {
	client := &fakeLLM{answer: `{"name": "GlowSerum"}`}
	svc := newTestService(t, client, nil)

	svc.ResearchProduct(context.Background(), "GlowSerum")

	assert.Contains(t, client.lastPrompt, "search_google(GlowSerum)")
	assert.Contains(t, client.lastPrompt, "search_google(GlowSerum ingredients price reviews)")
}

func TestResearchProduct_MalformedJSONFallsBack(t *testing.T) {
	client := &fakeLLM{answer: `{"name": `}
	svc := newTestService(t, client, nil)

	info := svc.ResearchProduct(context.Background(), "GlowSerum")

	assert.Equal(t, "GlowSerum", info.Name)
	require.NotNil(t, info.Description)
	assert.Contains(t, *info.Description, "Error parsing result:")
}

func TestResearchProduct_LLMErrorFallsBack(t *testing.T) {
	client := &fakeLLM{err: fmt.Errorf("model unavailable")}
	svc := newTestService(t, client, nil)

	info := svc.ResearchProduct(context.Background(), "GlowSerum")

	assert.Equal(t, "GlowSerum", info.Name)
	require.NotNil(t, info.Description)
	assert.Contains(t, *info.Description, "model unavailable")
}

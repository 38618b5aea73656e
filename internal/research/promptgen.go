package research

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/brand-research/internal/agent"
	"github.com/jonathan/brand-research/internal/llm"
	"github.com/jonathan/brand-research/internal/prompts"
	"github.com/jonathan/brand-research/internal/types"
)

const (
	defaultNumTopics       = 5
	defaultPromptsPerTopic = 5
)

// promptPayload mirrors the JSON shape the model is asked to produce.
type promptPayload struct {
	Topics []struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Prompts     []struct {
			PromptText       string   `json:"prompt_text"`
			Intent           string   `json:"intent"`
			ExpectedMentions []string `json:"expected_mentions"`
		} `json:"prompts"`
	} `json:"topics"`
}

// GeneratePrompts produces brand-agnostic visibility-tracking prompts grouped
// by topic. The agent path runs the persona-framed task on the standard tier;
// the fast path sends the combined system and user prompt straight to the
// lite tier in one call. JSON failures yield an empty-topic result rather
// than an error.
func (s *Service) GeneratePrompts(ctx context.Context, req types.PromptGenerateRequest) types.PromptGenerationResult {
	numTopics := req.NumTopics
	if numTopics <= 0 {
		numTopics = defaultNumTopics
	}
	promptsPerTopic := req.PromptsPerTopic
	if promptsPerTopic <= 0 {
		promptsPerTopic = defaultPromptsPerTopic
	}

	topicsStr := "general"
	if len(req.Topics) > 0 {
		topicsStr = strings.Join(req.Topics, ", ")
	}

	data := map[string]string{
		"NumTopics":        strconv.Itoa(numTopics),
		"PromptsPerTopic":  strconv.Itoa(promptsPerTopic),
		"BrandDescription": req.BrandDescription,
		"TopicsStr":        topicsStr,
		"BrandName":        req.BrandName,
		"TotalPrompts":     strconv.Itoa(numTopics * promptsPerTopic),
	}

	userPrompt := prompts.Format(prompts.MustGet("promptgen.json", "user"), data)

	var raw string
	var err error
	if req.UseAgent {
		a := &agent.Agent{
			Role:      prompts.MustGet("promptgen.json", "agent_role"),
			Goal:      prompts.MustGet("promptgen.json", "agent_goal"),
			Backstory: prompts.MustGet("promptgen.json", "agent_backstory"),
			Client:    s.llm,
			Tier:      llm.TierStandard,
		}
		raw, err = a.Execute(ctx, agent.Task{Description: userPrompt})
	} else {
		prompt := prompts.MustGet("promptgen.json", "system") + "\n\n" + userPrompt
		raw, err = s.llm.GenerateJSON(ctx, prompt, llm.TierLite)
	}
	if err != nil {
		return emptyPromptResult(req.BrandName, topicsStr)
	}

	var payload promptPayload
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &payload); err != nil {
		return emptyPromptResult(req.BrandName, topicsStr)
	}

	result := types.PromptGenerationResult{
		BrandName: req.BrandName,
		Industry:  topicsStr,
		Topics:    make([]types.GeneratedTopic, 0, len(payload.Topics)),
	}

	for _, t := range payload.Topics {
		topic := types.GeneratedTopic{
			Name:        t.Name,
			Slug:        t.Slug,
			Description: t.Description,
			Prompts:     make([]types.GeneratedPrompt, 0, len(t.Prompts)),
		}
		if topic.Slug == "" {
			topic.Slug = slugify(t.Name)
		}

		for _, p := range t.Prompts {
			intent := p.Intent
			if intent == "" {
				intent = types.DefaultPromptIntent
			}
			mentions := p.ExpectedMentions
			if mentions == nil {
				mentions = []string{}
			}
			topic.Prompts = append(topic.Prompts, types.GeneratedPrompt{
				PromptText:       p.PromptText,
				Intent:           intent,
				ExpectedMentions: mentions,
			})
			result.TotalPrompts++
		}

		result.Topics = append(result.Topics, topic)
	}

	return result
}

func emptyPromptResult(brandName, topicsStr string) types.PromptGenerationResult {
	return types.PromptGenerationResult{
		BrandName: brandName,
		Industry:  topicsStr,
		Topics:    []types.GeneratedTopic{},
	}
}

func slugify(name string) string {
	return strings.NewReplacer(" ", "-", "/", "-").Replace(strings.ToLower(name))
}

// Package agent runs LLM research tasks with tool-gathered evidence.
//
// Tools are invoked deterministically before the model is called: every
// invocation listed on a task runs up front, its output is embedded in the
// prompt as evidence, and the model produces the final answer in a single
// completion. There is no multi-turn tool-calling loop, which keeps cost and
// latency at exactly one LLM call per task and makes runs reproducible.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/brand-research/internal/llm"
)

// Tool produces evidence text for the model. Tool failures are reported in
// the returned text rather than as errors, so one broken tool degrades the
// evidence instead of aborting the task.
type Tool interface {
	Name() string
	Call(ctx context.Context, input string) string
}

// FuncTool adapts a plain function into a Tool.
type FuncTool struct {
	ToolName string
	Fn       func(ctx context.Context, input string) string
}

func (t FuncTool) Name() string { return t.ToolName }

func (t FuncTool) Call(ctx context.Context, input string) string { return t.Fn(ctx, input) }

// Agent describes the persona a task runs under.
type Agent struct {
	Role      string
	Goal      string
	Backstory string

	Client llm.Client
	Tier   llm.ModelTier
}

// Invocation is one planned tool call with its input.
type Invocation struct {
	Tool  Tool
	Input string
}

// Task is a unit of research work: a description of what to produce, the
// tool calls that gather supporting evidence, and the shape the output
// must take.
type Task struct {
	Description    string
	ExpectedOutput string
	Invocations    []Invocation
}

// Execute gathers evidence from every invocation, assembles the prompt, and
// asks the model for a JSON answer. The returned string has markdown fences
// already stripped.
func (a *Agent) Execute(ctx context.Context, task Task) (string, error) {
	if a.Client == nil {
		return "", fmt.Errorf("agent has no LLM client")
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "You are %s.\n", a.Role)
	if a.Goal != "" {
		fmt.Fprintf(&sb, "Your goal: %s\n", a.Goal)
	}
	if a.Backstory != "" {
		fmt.Fprintf(&sb, "Background: %s\n", a.Backstory)
	}

	sb.WriteString("\n## Task\n\n")
	sb.WriteString(strings.TrimSpace(task.Description))
	sb.WriteString("\n")

	if evidence := a.gather(ctx, task.Invocations); evidence != "" {
		sb.WriteString("\n## Gathered Evidence\n")
		sb.WriteString(evidence)
	}

	if task.ExpectedOutput != "" {
		sb.WriteString("\n## Expected Output\n\n")
		sb.WriteString(strings.TrimSpace(task.ExpectedOutput))
		sb.WriteString("\n")
	}

	result, err := a.Client.GenerateJSON(ctx, sb.String(), a.Tier)
	if err != nil {
		return "", fmt.Errorf("task execution failed: %w", err)
	}
	return result, nil
}

func (a *Agent) gather(ctx context.Context, invocations []Invocation) string {
	var sb strings.Builder
	for _, inv := range invocations {
		output := inv.Tool.Call(ctx, inv.Input)
		fmt.Fprintf(&sb, "\n### %s(%s)\n\n%s\n", inv.Tool.Name(), inv.Input, output)
	}
	return sb.String()
}

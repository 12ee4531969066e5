package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/riskgate/riskgate/internal/adapters/outbound/config"
	"github.com/riskgate/riskgate/internal/adapters/outbound/evalclient"
	"github.com/riskgate/riskgate/internal/application"
	"github.com/riskgate/riskgate/internal/domain"
	"github.com/riskgate/riskgate/internal/domain/rules"
)

// registerTools registers the Riskgate MCP tools on the given server.
func registerTools(s *server.MCPServer, settings config.Settings) {
	// 1. riskgate_evaluate
	s.AddTool(
		mcplib.NewTool("riskgate_evaluate",
			mcplib.WithDescription("Submit a network-onboarding intake form to the configured risk-evaluation service and return the decision as JSON"),
			mcplib.WithString("form",
				mcplib.Required(),
				mcplib.Description("Intake form as YAML (same shape as intake.yaml)"),
			),
		),
		handleEvaluate(settings),
	)

	// 2. riskgate_evaluate_rules
	s.AddTool(
		mcplib.NewTool("riskgate_evaluate_rules",
			mcplib.WithDescription("Evaluate an intake form with the local deterministic rules engine, without any network access"),
			mcplib.WithString("form",
				mcplib.Required(),
				mcplib.Description("Intake form as YAML (same shape as intake.yaml)"),
			),
		),
		handleEvaluateRules(),
	)
}

func handleEvaluate(settings config.Settings) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		form, err := parseForm(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		client := evalclient.New(settings.BaseURL, evalclient.WithPath(settings.EvaluatePath))
		svc := application.NewSubmissionService(client)

		state, err := svc.Submit(ctx, form)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if state.Phase == domain.PhaseFailed {
			return errorResult(state.Err), nil
		}
		return jsonResult(state.Result)
	}
}

func handleEvaluateRules() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		form, err := parseForm(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		result := rules.Evaluate(domain.Normalize(form))
		return jsonResult(result)
	}
}

func parseForm(request mcplib.CallToolRequest) (domain.FormState, error) {
	raw, err := request.RequireString("form")
	if err != nil {
		return domain.FormState{}, err
	}
	var form domain.FormState
	if err := yaml.Unmarshal([]byte(raw), &form); err != nil {
		return domain.FormState{}, fmt.Errorf("parsing intake form: %w", err)
	}
	return form, nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/finpredictor"
	"google.golang.org/genai"
)

// Gemini generates insights with a Gemini model.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini API client. An empty model is DefaultModel.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing Gemini API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini's client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{client: client, model: model}, nil
}

// Client returns the underlying client, for the interactive Agent.
func (g *Gemini) Client() *genai.Client { return g.client }

// Model returns the model name.
func (g *Gemini) Model() string { return g.model }

var insightsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":  {Type: genai.TypeString, Description: "A short title, two to four words."},
			"detail": {Type: genai.TypeString, Description: "One or two actionable sentences."},
		},
		Required:         []string{"title", "detail"},
		PropertyOrdering: []string{"title", "detail"},
	},
}

// GenerateInsights asks the model for insights as a JSON array.
func (g *Gemini) GenerateInsights(ctx context.Context, prompt string) ([]finpredictor.Insight, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   insightsSchema,
		SystemInstruction: instruction(`
		You are a financial advisor for Indian retail investors.
		Give three to five concise recommendations about SIPs, goals, risk alignment and allocation.
		Ground them on the user's data, quote amounts in rupees.`),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, err
	}
	return parseInsights(resp.Text())
}

// parseInsights decodes a JSON array of insights, dropping empty ones.
func parseInsights(s string) ([]finpredictor.Insight, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(s, "```")), "```")

	var raw []finpredictor.Insight
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("invalid insights: %w", err)
	}
	out := raw[:0]
	for _, in := range raw {
		if strings.TrimSpace(in.Title) != "" && strings.TrimSpace(in.Detail) != "" {
			out = append(out, in)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("model returned no insights")
	}
	return out, nil
}

package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kurochkinivan/autobiz/internal/analysis"
	"github.com/kurochkinivan/autobiz/internal/domain"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// PDF core fonts cannot render the rupee sign.
var replacer = strings.NewReplacer("₹", "Rs.")

type GenAI struct {
	client *genai.Client
	model  string
}

func NewGenAI(ctx context.Context, apiKey, model string) (*GenAI, error) {
	if apiKey == "" {
		return nil, errors.New("GenAI API key is required")
	}

	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAI{
		client: client,
		model:  model,
	}, nil
}

func (g *GenAI) Summarize(ctx context.Context, insights *domain.Insights) (string, error) {
	prompt := "Summarize these CSV insights in a professional business report:\n" +
		strings.Join(analysis.Lines(insights), "\n")

	reply, err := g.generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to summarize insights: %w", err)
	}

	return replacer.Replace(reply), nil
}

func (g *GenAI) Reply(ctx context.Context, message string) (string, error) {
	reply, err := g.generate(ctx, "Answer this prompt as a coding expert:\n\n"+message)
	if err != nil {
		return "", fmt.Errorf("failed to answer prompt: %w", err)
	}

	return reply, nil
}

func (g *GenAI) generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty response from model")
	}

	return text, nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"fintrack/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	GenerateInsight(ctx context.Context, insightType domain.InsightType, summary domain.FinancialSummary) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const prompt = `
You are a personal finance assistant. You will receive a JSON digest of a user's finances: average monthly income and expenses, how many months of history the averages cover, expense volatility (annualized standard deviation of month-over-month expense changes, in percent), and per-category expense totals.

Write a short narrative insight (3-5 sentences, plain text, no markdown) focused on the requested topic:
- SPENDING: which categories dominate, unusual concentration, concrete suggestions
- SAVINGS: achievable monthly savings given the gap between income and expenses
- CASHFLOW: whether the income/expense trend is sustainable and why

Interpret the numbers rather than repeating them verbatim, and never invent figures that are not in the digest. If monthsCovered is below 2, say the history is too short to be confident.
`

func (h gptRepositoryHandler) GenerateInsight(ctx context.Context, insightType domain.InsightType, summary domain.FinancialSummary) (string, error) {
	summaryBytes, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("failed to marshal financial summary: %w", err)
	}

	response, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: prompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: fmt.Sprintf("topic: %s\ndigest: %s", insightType, string(summaryBytes)),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate %s insight: %w", insightType, err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices for %s insight", insightType)
	}

	return response.Choices[0].Message.Content, nil
}

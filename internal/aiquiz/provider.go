package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"google.golang.org/genai"
)

var ErrProviderUnavailable = errors.New("question generator is not configured")

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]DraftQuestion, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]DraftQuestion, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar conteúdo do Gemini")
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Resposta bruta do Gemini:\n%s", raw)

	return parseDrafts(raw)
}

// parseDrafts accepts the model reply with or without a markdown fence.
func parseDrafts(raw string) ([]DraftQuestion, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("empty model response")
	}

	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)

	var drafts []DraftQuestion
	if err := json.Unmarshal([]byte(clean), &drafts); err != nil {
		return nil, fmt.Errorf("decode model JSON: %w", err)
	}
	return drafts, nil
}

type unavailableProvider struct{}

func (unavailableProvider) SendPrompt(context.Context, string, string) ([]DraftQuestion, error) {
	return nil, ErrProviderUnavailable
}

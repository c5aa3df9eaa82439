package aiquiz

import (
	"context"

	"github.com/saulo-duarte/testseries-lambda/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(model string) *AIQuizContainer {
	ctx := context.Background()

	provider, err := NewGeminiProvider(ctx, model)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Gemini indisponível, geração de rascunhos desativada")
		provider = unavailableProvider{}
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}
}

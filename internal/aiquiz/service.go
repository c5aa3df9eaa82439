package aiquiz

import (
	"context"
	"strings"

	"github.com/saulo-duarte/testseries-lambda/internal/config"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req DraftRequest) (*DraftResponse, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, req DraftRequest) (*DraftResponse, error) {
	log := config.WithContext(ctx)

	req.Topic = strings.TrimSpace(req.Topic)
	if err := config.Validate.Struct(req); err != nil {
		return nil, err
	}

	drafts, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, err
	}

	limit := req.Count
	if limit <= 0 {
		limit = defaultCount
	}

	resp := &DraftResponse{Questions: make([]DraftQuestion, 0, len(drafts))}
	for _, d := range drafts {
		d.Text = strings.TrimSpace(d.Text)
		if !d.usable() || len(resp.Questions) >= limit {
			resp.Discarded++
			continue
		}
		resp.Questions = append(resp.Questions, d)
	}

	log.WithField("topic", req.Topic).Infof("[AIQUIZ] %d rascunhos gerados, %d descartados", len(resp.Questions), resp.Discarded)
	return resp, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kdduha/diagram-ai-backend/internal/metrics"
	"github.com/kdduha/diagram-ai-backend/internal/models"
	"github.com/kdduha/diagram-ai-backend/internal/prompt"
	"go.uber.org/zap"
)

// Completer is a chat completion provider.
type Completer interface {
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
}

// ClientFactory builds a Completer. It is called once per generation request,
// so a missing upstream configuration fails that request and nothing else.
type ClientFactory func() (Completer, error)

type GenerateService struct {
	logger    *zap.Logger
	newClient ClientFactory
}

func NewGenerateService(logger *zap.Logger, newClient ClientFactory) *GenerateService {
	return &GenerateService{
		logger:    logger,
		newClient: newClient,
	}
}

// GenerateDiagram returns diagram markup for userPrompt.
func (s *GenerateService) GenerateDiagram(ctx context.Context, userPrompt string) (string, error) {
	return s.generate(ctx, prompt.Diagram, userPrompt)
}

// GenerateMindmapTree returns a tree JSON mind map for userPrompt.
func (s *GenerateService) GenerateMindmapTree(ctx context.Context, userPrompt string) (string, error) {
	return s.generate(ctx, prompt.MindmapTree, userPrompt)
}

// GenerateMindmapMarkup returns a Mermaid mindmap for userPrompt.
func (s *GenerateService) GenerateMindmapMarkup(ctx context.Context, userPrompt string) (string, error) {
	return s.generate(ctx, prompt.MindmapMarkup, userPrompt)
}

func (s *GenerateService) generate(ctx context.Context, mode prompt.Mode, userPrompt string) (string, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", ErrEmptyPrompt
	}

	client, err := s.newClient()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	start := time.Now()
	content, err := client.Complete(ctx, prompt.Messages(mode, userPrompt))
	if err != nil {
		metrics.UpstreamRequest(string(mode), metrics.StatusError, time.Since(start))
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	result := mode.Extractor()(content)
	if result == "" {
		metrics.UpstreamRequest(string(mode), metrics.StatusEmpty, time.Since(start))
		return "", ErrEmptyResult
	}
	metrics.UpstreamRequest(string(mode), metrics.StatusOK, time.Since(start))

	s.logger.Debug("generation finished",
		zap.String("mode", string(mode)),
		zap.Int("reply_len", len(content)),
		zap.Int("result_len", len(result)),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

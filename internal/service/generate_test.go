package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kdduha/diagram-ai-backend/internal/models"
	"github.com/kdduha/diagram-ai-backend/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeCompleter struct {
	reply string
	err   error

	calls    int
	messages []models.ChatMessage
}

func (f *fakeCompleter) Complete(_ context.Context, messages []models.ChatMessage) (string, error) {
	f.calls++
	f.messages = messages
	return f.reply, f.err
}

func newService(t *testing.T, c *fakeCompleter) (*GenerateService, *int) {
	factoryCalls := 0
	return NewGenerateService(zaptest.NewLogger(t), func() (Completer, error) {
		factoryCalls++
		return c, nil
	}), &factoryCalls
}

func TestGenerateDiagramSendsTwoMessages(t *testing.T) {
	c := &fakeCompleter{reply: "Sure:\n```mermaid\nflowchart TD\n  A([Start]) --> B{Paid?}\n```\n"}
	s, _ := newService(t, c)

	got, err := s.GenerateDiagram(context.Background(), "ordering workflow")
	require.NoError(t, err)

	assert.Equal(t, "flowchart TD\n  A([Start]) --> B{Paid?}", got)
	require.Equal(t, 1, c.calls)
	require.Len(t, c.messages, 2)
	assert.Equal(t, models.ChatMessage{Role: models.RoleSystem, Content: prompt.Build(prompt.Diagram)}, c.messages[0])
	assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Content: "ordering workflow"}, c.messages[1])
}

func TestGenerateMindmapTree(t *testing.T) {
	c := &fakeCompleter{reply: `Here you go {"topic":"Plan","children":[{"topic":"Goal"}]} hope it helps`}
	s, _ := newService(t, c)

	got, err := s.GenerateMindmapTree(context.Background(), "  product plan ")
	require.NoError(t, err)

	assert.Equal(t, `{"topic":"Plan","children":[{"topic":"Goal"}]}`, got)
	require.Len(t, c.messages, 2)
	assert.Equal(t, prompt.Build(prompt.MindmapTree), c.messages[0].Content)
	assert.Equal(t, "  product plan ", c.messages[1].Content)
}

func TestGenerateMindmapMarkup(t *testing.T) {
	c := &fakeCompleter{reply: "```mermaid\nmindmap\n  root((Plan))\n    Goal\n```"}
	s, _ := newService(t, c)

	got, err := s.GenerateMindmapMarkup(context.Background(), "plan")
	require.NoError(t, err)

	assert.Equal(t, "mindmap\n  root((Plan))\n    Goal", got)
	assert.Equal(t, prompt.Build(prompt.MindmapMarkup), c.messages[0].Content)
}

func TestGenerateEmptyPromptSkipsUpstream(t *testing.T) {
	for _, p := range []string{"", " ", "\n\t  "} {
		c := &fakeCompleter{reply: "unused"}
		s, factoryCalls := newService(t, c)

		_, err := s.GenerateDiagram(context.Background(), p)
		assert.ErrorIs(t, err, ErrEmptyPrompt)

		_, err = s.GenerateMindmapTree(context.Background(), p)
		assert.ErrorIs(t, err, ErrEmptyPrompt)

		assert.Zero(t, c.calls)
		assert.Zero(t, *factoryCalls)
	}
}

func TestGenerateConfigError(t *testing.T) {
	cfgErr := errors.New("AI_UPSTREAM_API_KEY is empty")
	s := NewGenerateService(zaptest.NewLogger(t), func() (Completer, error) {
		return nil, cfgErr
	})

	_, err := s.GenerateDiagram(context.Background(), "ordering workflow")
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, cfgErr)
}

func TestGenerateUpstreamError(t *testing.T) {
	c := &fakeCompleter{err: errors.New("connection refused")}
	s, _ := newService(t, c)

	_, err := s.GenerateMindmapTree(context.Background(), "plan")
	require.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, "upstream AI call failed: connection refused", err.Error())
}

func TestGenerateEmptyResult(t *testing.T) {
	for _, reply := range []string{"", "   ", "\n\n"} {
		c := &fakeCompleter{reply: reply}
		s, _ := newService(t, c)

		_, err := s.GenerateDiagram(context.Background(), "plan")
		assert.ErrorIs(t, err, ErrEmptyResult)

		_, err = s.GenerateMindmapTree(context.Background(), "plan")
		assert.ErrorIs(t, err, ErrEmptyResult)
	}
}

// Package prompt holds the fixed system instructions sent with every
// generation request. The instruction depends on the mode only, never on
// the user's prompt.
package prompt

import (
	"github.com/kdduha/diagram-ai-backend/internal/extract"
	"github.com/kdduha/diagram-ai-backend/internal/models"
)

type Mode string

const (
	Diagram       Mode = "diagram"
	MindmapMarkup Mode = "mindmap-markup"
	MindmapTree   Mode = "mindmap-tree"
)

// Build returns the system instruction for mode. Unknown modes get the diagram instruction.
func Build(mode Mode) string {
	switch mode {
	case MindmapMarkup:
		return mindmapMarkupPrompt
	case MindmapTree:
		return mindmapTreePrompt
	default:
		return diagramPrompt
	}
}

// Messages returns the system and user pair for one upstream call.
func Messages(mode Mode, userPrompt string) []models.ChatMessage {
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: Build(mode)},
		{Role: models.RoleUser, Content: userPrompt},
	}
}

// Extractor returns the procedure that recovers the payload from a reply in this mode.
func (m Mode) Extractor() func(string) string {
	if m == MindmapTree {
		return extract.JSONObject
	}
	return extract.FencedBlock
}

package models

// DiagramRequest represents request for text-to-diagram endpoint
type DiagramRequest struct {
	Prompt   string `json:"prompt" validate:"notblank" example:"ordering workflow"`
	Language string `json:"language" example:"zh-CN"`
	Format   string `json:"format" example:"mermaid"`
}

// MindmapRequest represents request for mindmap endpoints.
// Format is accepted for front end compatibility, the output shape is fixed by the endpoint.
type MindmapRequest struct {
	Prompt   string `json:"prompt" validate:"notblank" example:"product design"`
	Language string `json:"language" example:"zh-CN"`
	Format   string `json:"format" example:"mermaid_mindmap"`
}

// DiagramToCodeRequest is accepted but not processed
type DiagramToCodeRequest struct {
	Texts []string `json:"texts"`
	Image string   `json:"image" example:"data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAA..."`
	Theme string   `json:"theme" example:"light"`
}

const (
	DefaultLanguage      = "zh-CN"
	DefaultDiagramFormat = "mermaid"
	DefaultMindmapFormat = "mermaid_mindmap"
)

func NewDiagramRequest() DiagramRequest {
	return DiagramRequest{Language: DefaultLanguage, Format: DefaultDiagramFormat}
}

func NewMindmapRequest() MindmapRequest {
	return MindmapRequest{Language: DefaultLanguage, Format: DefaultMindmapFormat}
}

// GenerateResponse is the envelope the drawing front end expects.
// Rate limit fields are always null.
type GenerateResponse struct {
	GeneratedResponse  string `json:"generatedResponse"`
	RateLimit          *int   `json:"rateLimit"`
	RateLimitRemaining *int   `json:"rateLimitRemaining"`
}

type DiagramToCodeResponse struct {
	HTML string `json:"html"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/kdduha/diagram-ai-backend/internal/middleware"
	"github.com/kdduha/diagram-ai-backend/internal/models"
	"github.com/kdduha/diagram-ai-backend/internal/prompt"
	"github.com/kdduha/diagram-ai-backend/internal/service"
	"go.uber.org/zap"
)

type generateService interface {
	GenerateDiagram(ctx context.Context, userPrompt string) (string, error)
	GenerateMindmapTree(ctx context.Context, userPrompt string) (string, error)
	GenerateMindmapMarkup(ctx context.Context, userPrompt string) (string, error)
}

type GenerateHandler struct {
	logger   *zap.Logger
	service  generateService
	validate *validator.Validate
}

func NewGenerateHandler(logger *zap.Logger, service generateService) *GenerateHandler {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank is not baked into validator, it must be registered
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return &GenerateHandler{
		logger:   logger,
		service:  service,
		validate: v,
	}
}

// TextToDiagram godoc
// @Summary Generate diagram markup
// @Description Turn a text description into a single Mermaid diagram.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.DiagramRequest true "Diagram request"
// @Success 200 {object} models.GenerateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /v1/ai/text-to-diagram/generate [post]
func (h *GenerateHandler) TextToDiagram(w http.ResponseWriter, r *http.Request) {
	req := models.NewDiagramRequest()
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, prompt.Diagram, func(ctx context.Context) (string, error) {
		return h.service.GenerateDiagram(ctx, req.Prompt)
	})
}

// Mindmap godoc
// @Summary Generate tree JSON mind map
// @Description Turn a text description into an XMind style mind map: {topic, children?}.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.MindmapRequest true "Mindmap request"
// @Success 200 {object} models.GenerateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /v1/ai/mindmap/generate [post]
func (h *GenerateHandler) Mindmap(w http.ResponseWriter, r *http.Request) {
	req := models.NewMindmapRequest()
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, prompt.MindmapTree, func(ctx context.Context) (string, error) {
		return h.service.GenerateMindmapTree(ctx, req.Prompt)
	})
}

// MindmapMarkup godoc
// @Summary Generate Mermaid mind map
// @Description Turn a text description into a Mermaid mindmap block.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.MindmapRequest true "Mindmap request"
// @Success 200 {object} models.GenerateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /v1/ai/mindmap/markup/generate [post]
func (h *GenerateHandler) MindmapMarkup(w http.ResponseWriter, r *http.Request) {
	req := models.NewMindmapRequest()
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, prompt.MindmapMarkup, func(ctx context.Context) (string, error) {
		return h.service.GenerateMindmapMarkup(ctx, req.Prompt)
	})
}

func (h *GenerateHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, service.ErrEmptyPrompt.Error())
		return false
	}
	return true
}

func (h *GenerateHandler) respond(w http.ResponseWriter, r *http.Request, mode prompt.Mode, generate func(context.Context) (string, error)) {
	result, err := generate(r.Context())
	if err != nil {
		code := statusCode(err)
		h.logger.Error("generation failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("mode", string(mode)),
			zap.Int("code", code),
			zap.Error(err),
		)
		writeError(w, code, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{GeneratedResponse: result})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyPrompt):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

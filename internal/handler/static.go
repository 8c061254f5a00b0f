package handler

import (
	"io"
	"net/http"

	"github.com/kdduha/diagram-ai-backend/internal/models"
)

const diagramToCodePlaceholder = `<!DOCTYPE html>
<html>
  <body>
    <div style='font-family: sans-serif; padding: 16px;'>
      <h2>Diagram to Code - Placeholder</h2>
      <p>Diagram to code generation is not implemented by this backend yet.</p>
    </div>
  </body>
</html>`

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// DiagramToCode godoc
// @Summary Diagram to code placeholder
// @Description Accepts any payload and always returns the same placeholder document.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.DiagramToCodeRequest false "Diagram to code request"
// @Success 200 {object} models.DiagramToCodeResponse
// @Router /v1/ai/diagram-to-code/generate [post]
func DiagramToCode(w http.ResponseWriter, r *http.Request) {
	// the payload is not inspected, malformed bodies are accepted
	_, _ = io.Copy(io.Discard, r.Body)
	writeJSON(w, http.StatusOK, models.DiagramToCodeResponse{HTML: diagramToCodePlaceholder})
}

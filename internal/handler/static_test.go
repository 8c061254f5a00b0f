package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kdduha/diagram-ai-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDiagramToCode(t *testing.T) {
	bodies := []string{
		`{"texts":["box","arrow"],"image":"data:image/png;base64,iVBORw0KGgo=","theme":"dark"}`,
		`{}`,
		``,
		`not json at all`,
		`{"texts":`,
	}

	for _, body := range bodies {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/ai/diagram-to-code/generate", strings.NewReader(body))
		DiagramToCode(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "body %q", body)

		var resp models.DiagramToCodeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, diagramToCodePlaceholder, resp.HTML)
		assert.True(t, strings.HasPrefix(resp.HTML, "<!DOCTYPE html>"))
	}
}

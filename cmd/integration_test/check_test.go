package main

import (
	"testing"

	"github.com/agentgenesis/api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCheckResponse(t *testing.T) {
	valid := models.GenerateAgentResponse{
		GenerationID: uuid.New(),
		Code:         "class TranslatorAgent {}",
		Language:     models.Language,
		Model:        "gemini-2.5-flash",
	}

	tests := []struct {
		name    string
		mutate  func(r *models.GenerateAgentResponse)
		wantErr bool
	}{
		{"valid", func(*models.GenerateAgentResponse) {}, false},
		{"verbatim passthrough with fence", func(r *models.GenerateAgentResponse) {
			r.Code = "Here you go:\n```js\nconst x = 1;\n```"
		}, false},
		{"nested fence", func(r *models.GenerateAgentResponse) {
			r.Code = "const doc = `\n```\ninner\n```\n`;"
		}, false},
		{"blank code", func(r *models.GenerateAgentResponse) { r.Code = "  \n" }, true},
		{"wrong language", func(r *models.GenerateAgentResponse) { r.Language = "python" }, true},
		{"missing model", func(r *models.GenerateAgentResponse) { r.Model = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := valid
			tt.mutate(&resp)
			err := checkResponse(resp)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

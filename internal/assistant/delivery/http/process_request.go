package http

import (
	"github.com/gin-gonic/gin"

	"serava-assistant/internal/assistant"
)

type promptReq struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (h *handler) processPromptRequest(c *gin.Context) (promptReq, error) {
	var req promptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return promptReq{}, err
	}
	return req, nil
}

func (req promptReq) toInput() assistant.PromptInput {
	return assistant.PromptInput{Prompt: req.Prompt}
}

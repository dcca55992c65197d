package http

import (
	"github.com/gin-gonic/gin"

	"serava-assistant/internal/middleware"
	"serava-assistant/pkg/response"
)

// ProcessPrompt godoc
// @Summary     Process a natural-language calendar prompt
// @Description Classifies the prompt, extracts calendar operations, and dispatches them against the caller's Google Calendar.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "User identity"
// @Param       body      body   promptReq true "Prompt"
// @Success     200 {object} response.Resp{data=promptResp}
// @Failure     400 {object} response.Resp "Invalid request"
// @Failure     401 {object} response.Resp "Authentication failed"
// @Failure     404 {object} response.Resp "Event not found"
// @Failure     500 {object} response.Resp "Upstream failure"
// @Router      /api/v1/ai/prompt [POST]
func (h *handler) ProcessPrompt(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPromptRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.http.ProcessPrompt: invalid request: %v", err)
		response.Error(c, errInvalidRequest)
		return
	}

	out, err := h.uc.ProcessPrompt(ctx, middleware.Scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.http.ProcessPrompt: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPromptResp(out))
}

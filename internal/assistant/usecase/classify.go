package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"serava-assistant/internal/assistant"
	"serava-assistant/pkg/llmprovider"
)

type classification struct {
	IsCalendarTask bool
	Reply          string
}

// classifyPrompt decides whether the prompt belongs to the calendar pipeline.
// A reply that cannot be parsed degrades to general chat with a fallback
// message; the raw reply is only logged, never shown to the user.
func (uc *implUseCase) classifyPrompt(ctx context.Context, prompt string) (classification, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction(SystemPromptClassify),
		Messages:          userMessage(prompt),
		Temperature:       0.1,
		MaxTokens:         512,
	})
	if err != nil {
		return classification{}, fmt.Errorf("%w: classify: %v", assistant.ErrUpstreamAPIFailure, err)
	}

	raw := resp.Text()
	var dto classifyDTO
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &dto); err != nil || dto.IsCalendarTask == nil {
		uc.l.Warnf(ctx, "assistant.usecase.classifyPrompt: unparseable model reply: %q", raw)
		return classification{IsCalendarTask: false, Reply: FallbackReply}, nil
	}

	cls := classification{IsCalendarTask: *dto.IsCalendarTask, Reply: dto.Response}
	if !cls.IsCalendarTask && cls.Reply == "" {
		cls.Reply = FallbackReply
	}
	return cls, nil
}

// classifyRangeShape reports whether the calendar request is range-shaped.
// Any failure falls back to the single date/time pipeline.
func (uc *implUseCase) classifyRangeShape(ctx context.Context, prompt string) bool {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction(SystemPromptRangeClassify),
		Messages:          userMessage(prompt),
		Temperature:       0.1,
		MaxTokens:         64,
	})
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.classifyRangeShape: %v", err)
		return false
	}

	raw := resp.Text()
	var dto rangeClassifyDTO
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &dto); err != nil || dto.IsRangeQuery == nil {
		uc.l.Warnf(ctx, "assistant.usecase.classifyRangeShape: unparseable model reply: %q", raw)
		return false
	}
	return *dto.IsRangeQuery
}

package usecase

import (
	"context"
	"strings"

	"serava-assistant/internal/assistant"
	"serava-assistant/internal/model"
)

// ProcessPrompt runs the full pipeline for one natural-language prompt:
// token lookup, calendar/general classification, snapshot fetch, structured
// extraction, and batch dispatch.
func (uc *implUseCase) ProcessPrompt(ctx context.Context, sc model.Scope, input assistant.PromptInput) (assistant.PromptOutput, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return assistant.PromptOutput{}, assistant.ErrEmptyPrompt
	}

	token, err := uc.authUC.GetValidAccessToken(ctx, sc.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.ProcessPrompt: token: %v", err)
		return assistant.PromptOutput{}, err
	}

	cls, err := uc.classifyPrompt(ctx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ProcessPrompt: classify: %v", err)
		return assistant.PromptOutput{}, err
	}
	if !cls.IsCalendarTask {
		return assistant.PromptOutput{
			Parsed: assistant.ParsedIntent{Kind: assistant.KindGeneral, Reply: cls.Reply},
		}, nil
	}

	snapshot, err := uc.fetchSnapshot(ctx, sc.UserID, token)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ProcessPrompt: snapshot: %v", err)
		return assistant.PromptOutput{}, err
	}

	isRange := uc.classifyRangeShape(ctx, prompt)

	parsed, err := uc.extractIntent(ctx, prompt, snapshot, isRange)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ProcessPrompt: extract: %v", err)
		return assistant.PromptOutput{}, err
	}
	if parsed.Kind == assistant.KindError {
		return assistant.PromptOutput{Parsed: parsed}, nil
	}

	results, err := uc.dispatchIntent(ctx, sc.UserID, token, parsed, snapshot)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.ProcessPrompt: dispatch: %v", err)
		return assistant.PromptOutput{}, err
	}

	return assistant.PromptOutput{Parsed: parsed, Results: results}, nil
}

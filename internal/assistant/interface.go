package assistant

import (
	"context"

	"serava-assistant/internal/model"
)

// UseCase turns a natural-language prompt into calendar mutations.
type UseCase interface {
	// ProcessPrompt classifies the prompt, extracts a structured intent against a
	// fresh calendar snapshot, resolves event references, and dispatches the
	// resulting operations with the caller's access token.
	ProcessPrompt(ctx context.Context, sc model.Scope, input PromptInput) (PromptOutput, error)
}

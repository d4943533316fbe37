package service

import "context"

// AIService produces an answer to a question grounded in document text.
// Implementations call a chat-completion provider with the document as the
// system turn and the question as the user turn, drain the streamed
// fragments in arrival order and return the concatenated, trimmed result.
type AIService interface {
	Answer(ctx context.Context, question string, document string) (string, error)
}

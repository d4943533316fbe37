package mock

import "context"

// AIService is a mock implementation of service.AIService.
type AIService struct {
	AnswerFn      func(ctx context.Context, question, document string) (string, error)
	AnswerInvoked bool
}

func (m *AIService) Answer(ctx context.Context, question, document string) (string, error) {
	m.AnswerInvoked = true
	return m.AnswerFn(ctx, question, document)
}

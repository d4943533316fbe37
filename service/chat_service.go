package service

import (
	"context"
	"time"

	"github.com/trungle-dev/docqa-be/types"
)

const defaultAnswerTimeout = 60 * time.Second

// ChatService answers questions about uploaded documents. It validates the
// request, resolves the document text through the store and hands both to
// the completion provider, bounded by a timeout.
type ChatService struct {
	store   *DocumentStore
	ai      AIService
	timeout time.Duration
}

func NewChatService(store *DocumentStore, ai AIService, timeout time.Duration) *ChatService {
	if timeout <= 0 {
		timeout = defaultAnswerTimeout
	}
	return &ChatService{
		store:   store,
		ai:      ai,
		timeout: timeout,
	}
}

// Ask answers question against the document stored under filename. Missing
// fields fail before any extraction or network work; an unknown filename is
// a not-found; any provider failure, including a timeout, is a gateway
// failure. One completion attempt per call, no retries.
func (s *ChatService) Ask(ctx context.Context, filename, question string) (string, error) {
	if question == "" || filename == "" {
		return "", types.Errorf(types.KindBadRequest, "both 'question' and 'filename' are required")
	}

	document, err := s.store.Get(filename)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.ai.Answer(ctx, question, document)
	if err != nil {
		return "", types.Errorf(types.KindGatewayFailure, "completion failed: %w", err)
	}
	return answer, nil
}

package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIService implements AIService against any OpenAI-compatible
// chat-completion endpoint (OpenAI, Groq, a local llama server).
type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(baseURL, apiKey, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIService{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Answer streams a completion for the question with the document text as
// system context and concatenates the deltas into one answer.
func (s *OpenAIService) Answer(ctx context.Context, question, document string) (string, error) {
	stream, err := s.client.CreateChatCompletionStream(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: document},
				{Role: openai.ChatMessageRoleUser, Content: question},
			},
			Temperature: 1,
			TopP:        1,
			MaxTokens:   1024,
			Stream:      true,
		},
	)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var b strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			continue
		}
		b.WriteString(resp.Choices[0].Delta.Content)
	}
	return strings.TrimSpace(b.String()), nil
}

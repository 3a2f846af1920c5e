package llmclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

// CompletionRequest descreve uma chamada de chat com um prompt de sistema e uma mensagem do usuário
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	JSONResponse bool
}

type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type OpenAIClient struct {
	client      *openai.Client
	temperature float32
}

// NewClient cria um cliente para qualquer endpoint compatível com a API de chat completions
func NewClient(cfg config.LLM) Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientConfig.HTTPClient = &http.Client{}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientConfig),
		temperature: cfg.Temperature,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: c.temperature,
	}
	if req.JSONResponse {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("chat completion failed status=%d: %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("request chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty chat completion choices")
	}

	return resp.Choices[0].Message.Content, nil
}

package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/dakotaradigan/resume-site/backend/internal/config"
	"github.com/dakotaradigan/resume-site/backend/internal/model/chat"
	"github.com/dakotaradigan/resume-site/backend/internal/model/profile"
	chatservice "github.com/dakotaradigan/resume-site/backend/internal/service/chat"
)

// Service answers visitor questions from the profile facts through an LLM.
// It satisfies chatservice.Responder.
type Service struct {
	profiles profile.Store
	cfg      config.AIConfig
	template PromptTemplate
	chain    compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the Ark chat model described by cfg and wraps it.
func NewService(ctx context.Context, profiles profile.Store, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return NewServiceWithModel(ctx, chatModel, profiles, cfg)
}

// NewServiceWithModel wires an existing chat model into the prompt chain.
func NewServiceWithModel(ctx context.Context, chatModel model.BaseChatModel, profiles profile.Store, cfg config.AIConfig) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		profiles: profiles,
		cfg:      cfg,
		template: DefaultPromptTemplate(),
		chain:    runnable,
	}, nil
}

// StreamingEnabled reports whether replies are assembled from a token stream.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// Respond generates the assistant reply for the latest question.
func (s *Service) Respond(ctx context.Context, req chatservice.Request) (string, error) {
	input := s.buildChainInput(req)

	var (
		response *schema.Message
		err      error
	)
	if s.StreamingEnabled() {
		response, err = s.streamResponse(ctx, input)
	} else {
		response, err = s.chain.Invoke(ctx, input)
	}
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}
	if response == nil {
		return "", chatservice.ErrEmptyResponse
	}

	log.Printf("[ai] generated response for session=%s, length=%d", req.SessionID, len(response.Content))
	return response.Content, nil
}

func (s *Service) streamResponse(ctx context.Context, input map[string]any) (*schema.Message, error) {
	stream, err := s.chain.Stream(ctx, input)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return nil, recvErr
		}
		if chunk != nil {
			chunks = append(chunks, chunk)
		}
	}

	if len(chunks) == 0 {
		return nil, chatservice.ErrEmptyResponse
	}
	return schema.ConcatMessages(chunks)
}

func (s *Service) buildChainInput(req chatservice.Request) map[string]any {
	return map[string]any{
		"system":  BuildSystemPrompt(s.template, s.profiles.Get()),
		"history": s.buildHistoryMessages(priorTurns(req)),
		"query":   req.Query,
	}
}

// priorTurns drops the trailing user message that carries the query.
func priorTurns(req chatservice.Request) []chat.Message {
	messages := req.Transcript
	if n := len(messages); n > 0 && messages[n-1].Role == chat.RoleUser && messages[n-1].Content == req.Query {
		messages = messages[:n-1]
	}
	return messages
}

func (s *Service) buildHistoryMessages(messages []chat.Message) []*schema.Message {
	limit := s.cfg.HistoryLimit
	if len(messages) == 0 || limit <= 0 {
		return nil
	}

	startIdx := 0
	if len(messages) > limit {
		startIdx = len(messages) - limit
	}

	history := make([]*schema.Message, 0, len(messages)-startIdx)
	for _, msg := range messages[startIdx:] {
		switch msg.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return history
}

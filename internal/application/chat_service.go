package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-chat-memory/internal/domain/entity"
	"github.com/oksasatya/go-chat-memory/pkg/assistant"
)

// ChatService composes the memory store with the assistant collaborator.
// Prior turns seed the session; the question and the reply are recorded
// afterwards so the next session sees both.
type ChatService struct {
	Memory    *MemoryService
	Assistant assistant.Assistant
	Logger    *logrus.Logger
}

func NewChatService(memory *MemoryService, a assistant.Assistant, logger *logrus.Logger) *ChatService {
	return &ChatService{Memory: memory, Assistant: a, Logger: logger}
}

// Ask answers one question for the given user with short-term context.
// The question is recorded before the assistant call, so it survives a
// provider failure; the reply is recorded once produced.
func (s *ChatService) Ask(ctx context.Context, userID, question string) (string, error) {
	history, err := s.Memory.History(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := s.Memory.Append(ctx, userID, entity.RoleUser, question); err != nil {
		return "", err
	}

	answer, err := s.Assistant.Generate(ctx, history, question)
	if err != nil {
		return "", fmt.Errorf("assistant: %w", err)
	}

	if err := s.Memory.Append(ctx, userID, entity.RoleAssistant, answer); err != nil {
		return "", err
	}

	return answer, nil
}

package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-chat-memory/internal/domain/entity"
)

type fakeAssistant struct {
	reply       string
	err         error
	seenHistory []entity.Turn
	seenQ       string
}

func (f *fakeAssistant) Generate(ctx context.Context, history []entity.Turn, question string) (string, error) {
	f.seenHistory = history
	f.seenQ = question
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestAsk_RecordsBothTurns(t *testing.T) {
	r := newFakeMemoryRepo()
	mem := NewMemoryService(r, testRetention, nil)
	llm := &fakeAssistant{reply: "hello"}
	s := NewChatService(mem, llm, nil)

	answer, err := s.Ask(context.Background(), "alice", "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", answer)
	assert.Equal(t, "hi", llm.seenQ)

	turns, err := mem.History(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, entity.Turn{Role: entity.RoleUser, Content: "hi"}, turns[0])
	assert.Equal(t, entity.Turn{Role: entity.RoleAssistant, Content: "hello"}, turns[1])
}

func TestAsk_SeedsAssistantWithPriorTurnsOnly(t *testing.T) {
	r := newFakeMemoryRepo()
	mem := NewMemoryService(r, testRetention, nil)
	llm := &fakeAssistant{reply: "hello"}
	s := NewChatService(mem, llm, nil)

	_, err := s.Ask(context.Background(), "alice", "hi")
	require.NoError(t, err)
	llm.reply = "hello again"
	_, err = s.Ask(context.Background(), "alice", "remember me?")
	require.NoError(t, err)

	// second call sees exactly the two turns from the first exchange;
	// the new question is passed separately, not duplicated into history
	require.Len(t, llm.seenHistory, 2)
	assert.Equal(t, "hi", llm.seenHistory[0].Content)
	assert.Equal(t, "hello", llm.seenHistory[1].Content)
	assert.Equal(t, "remember me?", llm.seenQ)
}

func TestAsk_AssistantFailureKeepsQuestion(t *testing.T) {
	r := newFakeMemoryRepo()
	mem := NewMemoryService(r, testRetention, nil)
	llm := &fakeAssistant{err: errors.New("provider unavailable")}
	s := NewChatService(mem, llm, nil)

	_, err := s.Ask(context.Background(), "alice", "hi")
	require.Error(t, err)

	turns, err := mem.History(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, entity.RoleUser, turns[0].Role)
}

func TestAsk_HistoryIsPerUser(t *testing.T) {
	r := newFakeMemoryRepo()
	mem := NewMemoryService(r, testRetention, nil)
	llm := &fakeAssistant{reply: "ok"}
	s := NewChatService(mem, llm, nil)

	_, err := s.Ask(context.Background(), "alice", "alice question")
	require.NoError(t, err)
	_, err = s.Ask(context.Background(), "bob", "bob question")
	require.NoError(t, err)

	// bob's call must not see alice's turns
	assert.Empty(t, llm.seenHistory)

	turns, err := mem.History(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, turns, 2)
}

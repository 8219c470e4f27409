package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa-tutor/internal/domain/model"
)

func TestConversations_ListFillsTitles(t *testing.T) {
	long := strings.Repeat("é", 150)
	store := &fakeChatStore{convos: []model.ConversationSummary{
		{ConversationID: "a", Title: "My notes", ProblemSlug: "two-sum", LastMessage: "short"},
		{ConversationID: "b", ProblemSlug: "longest-SUBSTRING-without-repeating", LastMessage: long},
		{ConversationID: "c"},
	}}

	got, err := NewConversations(store, nopLogger{}).List(context.Background(), "ada")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "My notes", got[0].Title)
	assert.Equal(t, "short", got[0].LastMessage)
	assert.Equal(t, "Longest Substring Without Repeating", got[1].Title)
	assert.Equal(t, strings.Repeat("é", 100), got[1].LastMessage)
	assert.Equal(t, "New Chat", got[2].Title)
}

func TestConversations_Rename(t *testing.T) {
	t.Run("renamed", func(t *testing.T) {
		store := &fakeChatStore{affected: 2}
		title, err := NewConversations(store, nopLogger{}).Rename(context.Background(), "ada", "c1", " Graphs ")
		require.NoError(t, err)
		assert.Equal(t, "Graphs", title)
		assert.Equal(t, "Graphs", store.renamed["c1"])
	})

	t.Run("blank title", func(t *testing.T) {
		store := &fakeChatStore{affected: 2}
		_, err := NewConversations(store, nopLogger{}).Rename(context.Background(), "ada", "c1", "  ")
		assert.ErrorIs(t, err, model.ErrInvalidRequest)
		assert.Empty(t, store.renamed)
	})

	t.Run("no such conversation", func(t *testing.T) {
		store := &fakeChatStore{}
		_, err := NewConversations(store, nopLogger{}).Rename(context.Background(), "ada", "c1", "Graphs")
		assert.ErrorIs(t, err, model.ErrConversationNotFound)
	})
}

func TestConversations_Delete(t *testing.T) {
	store := &fakeChatStore{affected: 4}
	deleted, err := NewConversations(store, nopLogger{}).Delete(context.Background(), "ada", "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.Equal(t, []string{"c1"}, store.deleted)
}

func TestConversations_History(t *testing.T) {
	store := &fakeChatStore{messages: []model.ChatMessage{
		{UserID: "ada", ConversationID: "c1", Question: "q", Response: "r"},
	}}
	turns, err := NewConversations(store, nopLogger{}).History(context.Background(), "ada", "c1")
	require.NoError(t, err)
	assert.Equal(t, []model.ChatTurn{{Question: "q", Response: "r"}}, turns)
}

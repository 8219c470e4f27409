package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

const (
	defaultConversationTitle = "New Chat"
	lastMessagePreview       = 100
)

// Conversations exposes a user's stored chats.
type Conversations struct {
	chats  ports.ChatStore
	logger ports.Logger
}

// NewConversations constructs a Conversations use case.
func NewConversations(chats ports.ChatStore, logger ports.Logger) *Conversations {
	return &Conversations{chats: chats, logger: logger}
}

// History returns the turns of one conversation, oldest first.
func (c *Conversations) History(ctx context.Context, username, conversationID string) ([]model.ChatTurn, error) {
	turns, err := c.chats.History(ctx, username, conversationID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return turns, nil
}

// List returns the user's conversations, most recent first, with display titles filled in.
func (c *Conversations) List(ctx context.Context, username string) ([]model.ConversationSummary, error) {
	summaries, err := c.chats.ListConversations(ctx, username)
	if err != nil {
		c.logger.Error(ctx, "failed to list conversations", "user", username, "error", err)
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	for i := range summaries {
		summaries[i].Title = displayTitle(summaries[i].Title, summaries[i].ProblemSlug)
		summaries[i].LastMessage = truncateRunes(summaries[i].LastMessage, lastMessagePreview)
	}
	return summaries, nil
}

// Rename sets a custom title on a conversation and returns the title as stored.
func (c *Conversations) Rename(ctx context.Context, username, conversationID, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", model.ErrInvalidRequest)
	}
	affected, err := c.chats.RenameConversation(ctx, username, conversationID, title)
	if err != nil {
		return "", fmt.Errorf("rename conversation: %w", err)
	}
	if affected == 0 {
		return "", model.ErrConversationNotFound
	}
	return title, nil
}

// Delete removes a conversation and reports how many messages went with it.
func (c *Conversations) Delete(ctx context.Context, username, conversationID string) (int64, error) {
	deleted, err := c.chats.DeleteConversation(ctx, username, conversationID)
	if err != nil {
		return 0, fmt.Errorf("delete conversation: %w", err)
	}
	c.logger.Info(ctx, "conversation deleted", "user", username, "conversation_id", conversationID, "messages", deleted)
	return deleted, nil
}

func displayTitle(stored, slug string) string {
	if stored != "" {
		return stored
	}
	if slug != "" {
		words := strings.Split(slug, "-")
		for i, w := range words {
			words[i] = capitalize(w)
		}
		return strings.Join(words, " ")
	}
	return defaultConversationTitle
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

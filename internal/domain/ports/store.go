package ports

import (
	"context"

	"dsa-tutor/internal/domain/model"
)

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user model.User) error
	FindUser(ctx context.Context, username string) (model.User, error)
}

// ChatStore persists chat transcripts.
type ChatStore interface {
	AppendMessage(ctx context.Context, msg model.ChatMessage) error
	History(ctx context.Context, userID, conversationID string) ([]model.ChatTurn, error)
	ListConversations(ctx context.Context, userID string) ([]model.ConversationSummary, error)
	RenameConversation(ctx context.Context, userID, conversationID, title string) (int64, error)
	DeleteConversation(ctx context.Context, userID, conversationID string) (int64, error)
}

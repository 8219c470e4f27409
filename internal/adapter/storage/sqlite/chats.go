package sqlite

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

// ChatRepository stores one row per question/answer turn in the chats table.
// Conversations are not stored separately; they are derived from their messages.
type ChatRepository struct {
	store *Store
}

var _ ports.ChatStore = (*ChatRepository)(nil)

// AppendMessage inserts msg.
func (r *ChatRepository) AppendMessage(ctx context.Context, msg model.ChatMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	insert := r.store.sb.Insert("chats").
		Columns("id", "user_id", "conversation_id", "problem_slug", "question", "response", "title", "created_at").
		Values(msg.ID, msg.UserID, msg.ConversationID, msg.ProblemSlug, msg.Question, msg.Response, msg.Title, msg.CreatedAt.UTC())

	if _, err := r.store.exec(ctx, insert); err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// History returns the turns of a conversation, oldest first.
func (r *ChatRepository) History(ctx context.Context, userID, conversationID string) ([]model.ChatTurn, error) {
	rows, err := r.store.query(ctx, r.store.sb.
		Select("question", "response").
		From("chats").
		Where(sq.Eq{"user_id": userID, "conversation_id": conversationID}).
		OrderBy("seq ASC"))
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	turns := make([]model.ChatTurn, 0)
	for rows.Next() {
		var turn model.ChatTurn
		if err := rows.Scan(&turn.Question, &turn.Response); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return turns, nil
}

// ListConversations returns one summary per conversation of userID, most recently active first.
// The summary carries the latest message and the latest non-empty title.
func (r *ChatRepository) ListConversations(ctx context.Context, userID string) ([]model.ConversationSummary, error) {
	rows, err := r.store.query(ctx, r.store.sb.
		Select(
			"c.conversation_id",
			"c.response",
			"c.created_at",
			"c.problem_slug",
			`COALESCE((SELECT t.title FROM chats t
				WHERE t.user_id = c.user_id AND t.conversation_id = c.conversation_id AND t.title <> ''
				ORDER BY t.seq DESC LIMIT 1), '')`,
		).
		From("chats c").
		Where(sq.Eq{"c.user_id": userID}).
		Where(`c.seq = (SELECT MAX(m.seq) FROM chats m
			WHERE m.user_id = c.user_id AND m.conversation_id = c.conversation_id)`).
		OrderBy("c.seq DESC"))
	if err != nil {
		return nil, fmt.Errorf("query conversations: %w", err)
	}
	defer rows.Close()

	summaries := make([]model.ConversationSummary, 0)
	for rows.Next() {
		var s model.ConversationSummary
		if err := rows.Scan(&s.ConversationID, &s.LastMessage, &s.Timestamp, &s.ProblemSlug, &s.Title); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return summaries, nil
}

// RenameConversation sets title on every message of the conversation and reports how many matched.
func (r *ChatRepository) RenameConversation(ctx context.Context, userID, conversationID, title string) (int64, error) {
	res, err := r.store.exec(ctx, r.store.sb.
		Update("chats").
		Set("title", title).
		Where(sq.Eq{"user_id": userID, "conversation_id": conversationID}))
	if err != nil {
		return 0, fmt.Errorf("rename conversation: %w", err)
	}
	return res.RowsAffected()
}

// DeleteConversation removes every message of the conversation and reports how many were removed.
func (r *ChatRepository) DeleteConversation(ctx context.Context, userID, conversationID string) (int64, error) {
	res, err := r.store.exec(ctx, r.store.sb.
		Delete("chats").
		Where(sq.Eq{"user_id": userID, "conversation_id": conversationID}))
	if err != nil {
		return 0, fmt.Errorf("delete conversation: %w", err)
	}
	return res.RowsAffected()
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

// DefaultHistoryWindow is the number of earlier turns included in a prompt.
const DefaultHistoryWindow = 5

// TutorChat answers a student's question about a problem by streaming a tutor reply
// and recording the finished exchange.
type TutorChat struct {
	resolver  ports.ProblemResolver
	completer ports.Completer
	chats     ports.ChatStore
	logger    ports.Logger
	window    int
	now       func() time.Time
	newID     func() string
}

// NewTutorChat constructs a TutorChat use case. A non-positive window uses DefaultHistoryWindow.
func NewTutorChat(
	resolver ports.ProblemResolver,
	completer ports.Completer,
	chats ports.ChatStore,
	logger ports.Logger,
	window int,
) *TutorChat {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	return &TutorChat{
		resolver:  resolver,
		completer: completer,
		chats:     chats,
		logger:    logger,
		window:    window,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Reply streams the answer to req through emit. Errors returned before emit is first called
// mean nothing was streamed. The exchange is stored only when the stream completes.
func (t *TutorChat) Reply(ctx context.Context, username string, req model.ChatRequest, emit func(string) error) error {
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.ProblemSlug) == "" || strings.TrimSpace(req.ConversationID) == "" {
		return fmt.Errorf("%w: question, problem_slug and conversation_id are required", model.ErrInvalidRequest)
	}

	t.logger.Info(ctx, "chat request received", "user", username, "problem", req.ProblemSlug)

	problem, err := t.resolver.GetProblemData(ctx, req.ProblemSlug)
	if err != nil {
		return err
	}

	prompt := BuildTutorPrompt(problem, req.Question, t.historyContext(ctx, username, req.ConversationID))

	var full strings.Builder
	for chunk, err := range t.completer.Stream(ctx, prompt) {
		if err != nil {
			t.logger.Error(ctx, "tutor stream failed", "user", username, "problem", req.ProblemSlug, "error", err)
			return err
		}
		if chunk == "" {
			continue
		}
		full.WriteString(chunk)
		if err := emit(chunk); err != nil {
			return fmt.Errorf("emit chunk: %w", err)
		}
	}

	msg := model.ChatMessage{
		ID:             t.newID(),
		UserID:         username,
		ConversationID: req.ConversationID,
		ProblemSlug:    req.ProblemSlug,
		Question:       req.Question,
		Response:       full.String(),
		CreatedAt:      t.now(),
	}
	if err := t.chats.AppendMessage(ctx, msg); err != nil {
		t.logger.Error(ctx, "failed to store chat message", "user", username, "conversation_id", req.ConversationID, "error", err)
	}
	return nil
}

func (t *TutorChat) historyContext(ctx context.Context, username, conversationID string) string {
	turns, err := t.chats.History(ctx, username, conversationID)
	if err != nil {
		t.logger.Error(ctx, "failed to load chat history", "user", username, "conversation_id", conversationID, "error", err)
		return "[]"
	}
	if len(turns) > t.window {
		turns = turns[len(turns)-t.window:]
	}
	if turns == nil {
		turns = []model.ChatTurn{}
	}
	encoded, err := json.MarshalIndent(turns, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// BuildTutorPrompt renders the instructions sent to the model for one question.
func BuildTutorPrompt(problem model.Problem, question, history string) string {
	var builder strings.Builder
	builder.WriteString("You are an expert Data Structures and Algorithms tutor. ")
	builder.WriteString(fmt.Sprintf("Guide the user step by step through the problem '%s' from %s. ", problem.Title, problem.Platform))
	builder.WriteString("Be patient and encouraging, and focus on long-term learning.\n\n")

	builder.WriteString("### Problem Details\n")
	builder.WriteString(fmt.Sprintf("* Platform: %s\n", problem.Platform))
	builder.WriteString(fmt.Sprintf("* Difficulty: %s\n", problem.Difficulty))
	builder.WriteString(fmt.Sprintf("* Tags: %s\n", strings.Join(problem.Tags, ", ")))
	builder.WriteString(fmt.Sprintf("* Description: %s\n\n", problem.Description))

	builder.WriteString("### User's Current Question\n")
	builder.WriteString(fmt.Sprintf("User asked: %s\n\n", question))
	builder.WriteString("Conversation so far:\n")
	builder.WriteString(history)
	builder.WriteString("\n\n")

	builder.WriteString("### Teaching Principles\n")
	builder.WriteString("1. Break the problem into smaller steps, starting with the high-level strategy. Move on once the user shows understanding instead of repeating the same point.\n")
	builder.WriteString("2. When the user is stuck, give hints in increasing detail: a directional hint, then an approach such as a specific algorithm or data structure, then a concrete implementation nudge. Only go to the next level if the user is still stuck.\n")
	builder.WriteString("3. When the user shares an approach or code, acknowledge what is good first, then point out bugs, efficiency concerns and better alternatives.\n")
	builder.WriteString("4. Use short code snippets to illustrate a step and explain them. Do not give a complete solution unless the user explicitly asks after several attempts.\n")
	builder.WriteString("5. End every reply with a question that makes the user think about the next step.\n\n")

	builder.WriteString("### Handling User States\n")
	builder.WriteString("- If the user says they don't know or seems frustrated, encourage them, rephrase the last question more simply and split it into smaller sub-problems.\n")
	builder.WriteString("- If the question is ambiguous, ask a clarifying question before answering.\n")
	builder.WriteString("- If the user asks about an unrelated DSA concept, answer briefly and guide them back to the problem.\n\n")

	builder.WriteString("Now continue guiding the user from where the conversation left off.\n")
	return builder.String()
}

package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/usecase"
)

const userKey = "tutor.user"

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type renameRequest struct {
	Title string `json:"title"`
}

// POST /signup
func (h *Handler) signup(c *gin.Context) {
	var body credentials
	if err := c.ShouldBindJSON(&body); err != nil {
		h.writeError(c, fmt.Errorf("%w: %w", model.ErrInvalidRequest, err))
		return
	}
	if err := h.accounts.Signup(c.Request.Context(), body.Username, body.Password); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// POST /token
func (h *Handler) token(c *gin.Context) {
	token, err := h.accounts.Login(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// GET /users/me
func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": currentUser(c).Username})
}

// GET /fetch-problem/*identifier
func (h *Handler) fetchProblem(c *gin.Context) {
	problem, err := h.problems.GetProblemData(c.Request.Context(), identifierParam(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, problem)
}

// GET /fetch-problem-summary/*identifier
func (h *Handler) fetchProblemSummary(c *gin.Context) {
	summary, err := usecase.SummarizeProblem(c.Request.Context(), h.problems, identifierParam(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /daily
func (h *Handler) dailyProblem(c *gin.Context) {
	_, problem, err := h.daily.Today(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, problem)
}

// POST /chat
func (h *Handler) chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, fmt.Errorf("%w: %w", model.ErrInvalidRequest, err))
		return
	}

	streaming := false
	err := h.tutor.Reply(c.Request.Context(), currentUser(c).Username, req, func(chunk string) error {
		if !streaming {
			c.Header("Content-Type", "text/plain; charset=utf-8")
			c.Status(http.StatusOK)
			streaming = true
		}
		if _, err := c.Writer.WriteString(chunk); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})

	switch {
	case err == nil && !streaming:
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.Status(http.StatusOK)
	case err != nil && !streaming:
		h.writeError(c, err)
	case err != nil:
		_, _ = c.Writer.WriteString("Error: " + err.Error())
		c.Writer.Flush()
	}
}

// GET /history/:conversation_id
func (h *Handler) history(c *gin.Context) {
	turns, err := h.conversations.History(c.Request.Context(), currentUser(c).Username, c.Param("conversation_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, turns)
}

// GET /conversations
func (h *Handler) listConversations(c *gin.Context) {
	summaries, err := h.conversations.List(c.Request.Context(), currentUser(c).Username)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// PATCH /history/:conversation_id
func (h *Handler) renameConversation(c *gin.Context) {
	var body renameRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.writeError(c, fmt.Errorf("%w: %w", model.ErrInvalidRequest, err))
		return
	}
	title, err := h.conversations.Rename(c.Request.Context(), currentUser(c).Username, c.Param("conversation_id"), body.Title)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation renamed", "title": title})
}

// DELETE /history/:conversation_id
func (h *Handler) deleteConversation(c *gin.Context) {
	conversationID := c.Param("conversation_id")
	deleted, err := h.conversations.Delete(c.Request.Context(), currentUser(c).Username, conversationID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted or not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Deleted %d messages for conversation %s", deleted, conversationID)})
}

func (h *Handler) requireUser(c *gin.Context) {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		h.writeError(c, model.ErrUnauthorized)
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), strings.TrimSpace(token))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set(userKey, user)
	c.Next()
}

func currentUser(c *gin.Context) model.User {
	user, _ := c.MustGet(userKey).(model.User)
	return user
}

// identifierParam strips the leading slash gin keeps on catch-all parameters.
func identifierParam(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("identifier"), "/")
}

// Package httpapi serves the tutor over HTTP with gin.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

// DailyChallenge returns today's featured problem.
type DailyChallenge interface {
	Today(ctx context.Context) (string, model.Problem, error)
}

// Tutor streams answers to chat requests.
type Tutor interface {
	Reply(ctx context.Context, username string, req model.ChatRequest, emit func(string) error) error
}

// Conversations manages stored chats.
type Conversations interface {
	History(ctx context.Context, username, conversationID string) ([]model.ChatTurn, error)
	List(ctx context.Context, username string) ([]model.ConversationSummary, error)
	Rename(ctx context.Context, username, conversationID, title string) (string, error)
	Delete(ctx context.Context, username, conversationID string) (int64, error)
}

// Accounts registers and authenticates users.
type Accounts interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (model.Token, error)
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// RequestObserver records served requests.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Deps are the services behind the routes.
type Deps struct {
	Problems      ports.ProblemResolver
	Daily         DailyChallenge
	Tutor         Tutor
	Conversations Conversations
	Accounts      Accounts
	Gatherer      prometheus.Gatherer
	Observer      RequestObserver
	Logger        ports.Logger
}

// Handler holds the route handlers.
type Handler struct {
	problems      ports.ProblemResolver
	daily         DailyChallenge
	tutor         Tutor
	conversations Conversations
	accounts      Accounts
	logger        ports.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d Deps) *gin.Engine {
	h := &Handler{
		problems:      d.Problems,
		daily:         d.Daily,
		tutor:         d.Tutor,
		conversations: d.Conversations,
		accounts:      d.Accounts,
		logger:        d.Logger,
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(d.Logger, d.Observer), cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	r.POST("/signup", h.signup)
	r.POST("/token", h.token)

	r.GET("/fetch-problem/*identifier", h.fetchProblem)
	r.GET("/fetch-problem-summary/*identifier", h.fetchProblemSummary)
	r.GET("/daily", h.dailyProblem)

	authed := r.Group("/", h.requireUser)
	authed.GET("/users/me", h.me)
	authed.POST("/chat", h.chat)
	authed.GET("/history/:conversation_id", h.history)
	authed.PATCH("/history/:conversation_id", h.renameConversation)
	authed.DELETE("/history/:conversation_id", h.deleteConversation)
	authed.GET("/conversations", h.listConversations)

	return r
}

func requestLogger(logger ports.Logger, observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if observer != nil {
			observer.ObserveRequest(c.Request.Method, route, c.Writer.Status(), elapsed)
		}
		if logger != nil {
			logger.Info(c.Request.Context(), "http request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", c.Writer.Status(),
				"duration", elapsed)
		}
	}
}

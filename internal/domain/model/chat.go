package model

import "time"

// ChatRequest is a single question asked about a problem within a conversation.
type ChatRequest struct {
	Question       string `json:"question"`
	ProblemSlug    string `json:"problem_slug"`
	ConversationID string `json:"conversation_id"`
}

// ChatMessage is one persisted question/answer turn.
type ChatMessage struct {
	ID             string
	UserID         string
	ConversationID string
	ProblemSlug    string
	Question       string
	Response       string
	Title          string
	CreatedAt      time.Time
}

// ChatTurn is the history view of a message sent back to clients and into prompts.
type ChatTurn struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// ConversationSummary describes a conversation in the sidebar listing.
type ConversationSummary struct {
	ConversationID string    `json:"conversation_id"`
	Title          string    `json:"title"`
	LastMessage    string    `json:"last_message"`
	Timestamp      time.Time `json:"timestamp"`
	ProblemSlug    string    `json:"problem_slug"`
}

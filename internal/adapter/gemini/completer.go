// Package gemini streams tutor replies from the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"

	"google.golang.org/genai"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash-lite"

// Completer implements ports.Completer on top of the genai SDK.
type Completer struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
	logger ports.Logger
}

var _ ports.Completer = (*Completer)(nil)

// New creates a Completer. Generation is deterministic with a single candidate.
func New(ctx context.Context, apiKey, modelName string, logger ports.Logger) (*Completer, error) {
	return newWithConfig(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, modelName, logger)
}

func newWithConfig(ctx context.Context, cc *genai.ClientConfig, modelName string, logger ports.Logger) (*Completer, error) {
	if cc.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Completer{
		client: client,
		model:  modelName,
		config: &genai.GenerateContentConfig{
			Temperature:    genai.Ptr[float32](0),
			CandidateCount: 1,
		},
		logger: logger,
	}, nil
}

// Stream yields the non-empty text chunks of the model's reply.
// A rate-limited request ends the sequence with model.ErrRateLimited.
func (c *Completer) Stream(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		c.debug(ctx, "calling gemini", "model", c.model, "prompt_length", len(prompt))

		chunks := 0
		for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, genai.Text(prompt), c.config) {
			if err != nil {
				yield("", classify(err))
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			chunks++
			if !yield(text, nil) {
				return
			}
		}

		c.debug(ctx, "gemini stream finished", "model", c.model, "chunks", chunks)
	}
}

func (c *Completer) debug(ctx context.Context, msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(ctx, msg, args...)
	}
}

func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", model.ErrRateLimited, err)
	}
	return fmt.Errorf("gemini stream: %w", err)
}

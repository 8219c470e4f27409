package ports

import (
	"context"
	"iter"
)

// Completer streams a text completion for a prompt from a hosted language model.
// The sequence yields text chunks in order; a non-nil error ends the stream.
type Completer interface {
	Stream(ctx context.Context, prompt string) iter.Seq2[string, error]
}

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrProblemNotFound is returned by scrapers when the platform has no such problem.
	ErrProblemNotFound = errors.New("problem not found")
	// ErrUnsupportedPlatform means the identifier matches no known platform shape.
	ErrUnsupportedPlatform = errors.New("unsupported platform or invalid URL")
	// ErrNoDataFound means the platform was recognized but nothing usable came back.
	ErrNoDataFound = errors.New("no data found")

	ErrInvalidRequest       = errors.New("invalid request")
	ErrUserExists           = errors.New("username already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("incorrect username or password")
	ErrUnauthorized         = errors.New("could not validate credentials")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrRateLimited          = errors.New("too many requests")
)

// ScrapeError reports that a platform was reached but the problem could not be fetched or parsed.
type ScrapeError struct {
	Platform Platform
	ID       string
	Reason   string
	Err      error
}

func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scrape %s %q: %s: %v", e.Platform.Key(), e.ID, e.Reason, e.Err)
	}
	return fmt.Sprintf("scrape %s %q: %s", e.Platform.Key(), e.ID, e.Reason)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

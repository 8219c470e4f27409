package model

import "strings"

// Platform identifies a supported problem source.
type Platform string

const (
	PlatformLeetCode   Platform = "LeetCode"
	PlatformCodeforces Platform = "Codeforces"
)

// String returns the display name stored on problem records.
func (p Platform) String() string {
	return string(p)
}

// Key returns the lower-case form used in logs, metric labels and error text.
func (p Platform) Key() string {
	return strings.ToLower(string(p))
}

// ResolvedIdentifier is a raw problem identifier normalized to a platform and its canonical id.
type ResolvedIdentifier struct {
	Platform    Platform
	CanonicalID string
}

// Problem holds the scraped metadata of a single problem statement.
type Problem struct {
	Title       string   `json:"title"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Hints       []string `json:"hints"`
	Platform    string   `json:"platform"`
}

// ProblemSummary is the description of a problem with its worked examples split out.
type ProblemSummary struct {
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

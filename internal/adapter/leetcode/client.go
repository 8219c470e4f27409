package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dsa-tutor/internal/adapter/scrape"
	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

const (
	graphQLEndpoint = "https://leetcode.com/graphql"
	siteURL         = "https://leetcode.com"
)

const questionDetailQuery = `query getQuestionDetail($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    title
    difficulty
    topicTags { name }
    content
    hints
  }
}`

const questionOfTodayQuery = `query questionOfToday {
  activeDailyCodingChallengeQuestion {
    link
    question { title titleSlug difficulty content hints topicTags { name } }
  }
}`

// Client scrapes problems from the LeetCode GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	logger     ports.Logger
	endpoint   string
	siteURL    string
}

var (
	_ ports.ProblemScraper       = (*Client)(nil)
	_ ports.DailyProblemProvider = (*Client)(nil)
)

// New creates a new LeetCode client.
func New(timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		httpClient: scrape.NewHTTPClient(timeout),
		logger:     logger,
		endpoint:   graphQLEndpoint,
		siteURL:    siteURL,
	}
}

// Platform reports LeetCode.
func (c *Client) Platform() model.Platform {
	return model.PlatformLeetCode
}

type question struct {
	Title      string   `json:"title"`
	TitleSlug  string   `json:"titleSlug"`
	Difficulty string   `json:"difficulty"`
	Content    string   `json:"content"`
	Hints      []string `json:"hints"`
	TopicTags  []struct {
		Name string `json:"name"`
	} `json:"topicTags"`
}

// Fetch retrieves a problem by its title slug.
func (c *Client) Fetch(ctx context.Context, slug string) (model.Problem, error) {
	var gqlResp struct {
		Data struct {
			Question *question `json:"question"`
		} `json:"data"`
	}

	payload := map[string]any{
		"query":     questionDetailQuery,
		"variables": map[string]string{"titleSlug": slug},
	}
	if err := c.post(ctx, payload, c.problemURL(slug), &gqlResp); err != nil {
		return model.Problem{}, c.scrapeError(slug, err)
	}

	if gqlResp.Data.Question == nil {
		c.debug(ctx, "leetcode question missing", "slug", slug)
		return model.Problem{}, model.ErrProblemNotFound
	}

	return toProblem(gqlResp.Data.Question), nil
}

// GetDailyChallenge retrieves the daily LeetCode challenge together with its slug.
func (c *Client) GetDailyChallenge(ctx context.Context) (string, model.Problem, error) {
	var gqlResp struct {
		Data struct {
			ActiveDailyCodingChallengeQuestion struct {
				Link     string    `json:"link"`
				Question *question `json:"question"`
			} `json:"activeDailyCodingChallengeQuestion"`
		} `json:"data"`
	}

	payload := map[string]any{"query": questionOfTodayQuery}
	if err := c.post(ctx, payload, c.siteURL, &gqlResp); err != nil {
		return "", model.Problem{}, c.scrapeError("daily", err)
	}

	q := gqlResp.Data.ActiveDailyCodingChallengeQuestion.Question
	if q == nil || q.TitleSlug == "" {
		return "", model.Problem{}, model.ErrProblemNotFound
	}

	return q.TitleSlug, toProblem(q), nil
}

func (c *Client) post(ctx context.Context, payload any, referer string, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := scrape.NewRequest(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", referer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if err := scrape.CheckStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) problemURL(slug string) string {
	return fmt.Sprintf("%s/problems/%s/", c.siteURL, slug)
}

func (c *Client) scrapeError(id string, err error) *model.ScrapeError {
	return &model.ScrapeError{
		Platform: model.PlatformLeetCode,
		ID:       id,
		Reason:   "graphql request failed",
		Err:      err,
	}
}

func (c *Client) debug(ctx context.Context, msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(ctx, msg, args...)
	}
}

func toProblem(q *question) model.Problem {
	tags := make([]string, 0, len(q.TopicTags))
	for _, tag := range q.TopicTags {
		tags = append(tags, tag.Name)
	}

	var hints []string
	for _, hint := range q.Hints {
		if clean := scrape.HTMLToText(hint); clean != "" {
			hints = append(hints, clean)
		}
	}

	return model.Problem{
		Title:       q.Title,
		Difficulty:  q.Difficulty,
		Tags:        tags,
		Description: scrape.HTMLToText(q.Content),
		Hints:       hints,
		Platform:    model.PlatformLeetCode.String(),
	}
}

// Package codeforces scrapes problem statements from codeforces.com.
//
// Codeforces exposes no statement API, so the contest is first confirmed through the public
// standings endpoint and the statement is then read from the problem page markup.
package codeforces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"dsa-tutor/internal/adapter/scrape"
	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

const (
	apiBaseURL  = "https://codeforces.com/api"
	siteBaseURL = "https://codeforces.com"

	// The statement carries no difficulty label; problem ratings only exist on the problemset API.
	placeholderDifficulty = "Medium"
	missingDescription    = "Description not available via typical extraction. Please visit the problem URL."
)

// Client implements ports.ProblemScraper for Codeforces.
type Client struct {
	httpClient *http.Client
	logger     ports.Logger
	apiURL     string
	siteURL    string
}

var _ ports.ProblemScraper = (*Client)(nil)

// New creates a Codeforces scraper.
func New(timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		httpClient: scrape.NewHTTPClient(timeout),
		logger:     logger,
		apiURL:     apiBaseURL,
		siteURL:    siteBaseURL,
	}
}

// Platform reports Codeforces.
func (c *Client) Platform() model.Platform {
	return model.PlatformCodeforces
}

// Fetch retrieves the problem identified by "contestId/index", e.g. "1915/A".
func (c *Client) Fetch(ctx context.Context, id string) (model.Problem, error) {
	contestID, index, ok := splitID(id)
	if !ok {
		c.debug(ctx, "codeforces id rejected", "id", id)
		return model.Problem{}, model.ErrProblemNotFound
	}

	if err := c.checkContest(ctx, id, contestID); err != nil {
		return model.Problem{}, err
	}

	doc, err := c.fetchDocument(ctx, fmt.Sprintf("%s/contest/%s/problem/%s", c.siteURL, contestID, url.PathEscape(index)))
	if err != nil {
		return model.Problem{}, c.scrapeError(id, "problem page", err)
	}

	statement := doc.Find("div.problem-statement").First()
	if statement.Length() == 0 {
		c.debug(ctx, "codeforces statement missing", "id", id)
		return model.Problem{}, model.ErrProblemNotFound
	}

	return parseStatement(statement, id), nil
}

// checkContest confirms the contest exists. Codeforces answers unknown contests with
// 400 and {"status":"FAILED"}, which is treated as not found rather than a failure.
func (c *Client) checkContest(ctx context.Context, id, contestID string) error {
	query := url.Values{}
	query.Set("contestId", contestID)
	query.Set("from", "1")
	query.Set("count", "1")

	req, err := scrape.NewRequest(ctx, http.MethodGet, c.apiURL+"/contest.standings?"+query.Encode(), nil)
	if err != nil {
		return c.scrapeError(id, "standings", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.scrapeError(id, "standings", fmt.Errorf("perform request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		if err := scrape.CheckStatus(resp); err != nil {
			return c.scrapeError(id, "standings", err)
		}
	}

	var payload struct {
		Status  string `json:"status"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err != nil {
		return c.scrapeError(id, "standings", fmt.Errorf("decode response: %w", err))
	}

	if payload.Status != "OK" {
		c.debug(ctx, "codeforces contest rejected", "id", id, "status", payload.Status, "comment", payload.Comment)
		return model.ErrProblemNotFound
	}
	return nil
}

func (c *Client) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := scrape.NewRequest(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if err := scrape.CheckStatus(resp); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

func parseStatement(statement *goquery.Selection, id string) model.Problem {
	title := scrape.CleanText(statement.Find("div.title").First().Text())
	if title == "" {
		title = "Problem " + id
	}

	legend := statement.ChildrenFiltered("div:not([class])").First()
	if legend.Length() == 0 {
		legend = statement.Find("div:not([class])").First()
	}
	description := scrape.CleanText(legend.Text())
	if description == "" {
		description = missingDescription
	}

	return model.Problem{
		Title:       title,
		Difficulty:  placeholderDifficulty,
		Tags:        []string{model.PlatformCodeforces.String()},
		Description: description,
		Platform:    model.PlatformCodeforces.String(),
	}
}

// splitID accepts exactly "<numeric contest id>/<index>".
func splitID(id string) (contestID, index string, ok bool) {
	parts := strings.Split(id, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	for _, r := range parts[0] {
		if r < '0' || r > '9' {
			return "", "", false
		}
	}
	return parts[0], parts[1], true
}

func (c *Client) scrapeError(id, reason string, err error) *model.ScrapeError {
	return &model.ScrapeError{
		Platform: model.PlatformCodeforces,
		ID:       id,
		Reason:   reason,
		Err:      err,
	}
}

func (c *Client) debug(ctx context.Context, msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(ctx, msg, args...)
	}
}

package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const perPage = 100

// Client is the HTTP wrapper for the GitLab REST v4 API, scoped to one project.
type Client struct {
	baseURL    string
	projectID  string
	httpClient *http.Client
}

// NewClient creates a client that authenticates every request with token as a bearer token.
// baseURL is the API root, e.g. https://gitlab.example.com/api/v4.
func NewClient(ctx context.Context, baseURL, token, projectID string, timeout time.Duration) *Client {
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = timeout
	return NewClientFromHTTP(baseURL, projectID, httpClient)
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
func NewClientFromHTTP(baseURL, projectID string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		projectID:  url.PathEscape(projectID),
		httpClient: httpClient,
	}
}

// GetIssue fetches a single issue by its IID via GET /projects/:id/issues/:iid.
func (c *Client) GetIssue(ctx context.Context, iid int) (*Issue, error) {
	var issue Issue
	if err := c.do(ctx, "get issue", http.MethodGet, c.projectPath("issues", strconv.Itoa(iid)), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// UpdateIssue edits an issue via PUT /projects/:id/issues/:iid.
func (c *Client) UpdateIssue(ctx context.Context, iid int, req UpdateIssueRequest) (*Issue, error) {
	var issue Issue
	if err := c.do(ctx, "update issue", http.MethodPut, c.projectPath("issues", strconv.Itoa(iid)), req, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// ListMilestoneIssues lists every issue assigned to a milestone, following pagination.
func (c *Client) ListMilestoneIssues(ctx context.Context, milestoneID int) ([]Issue, error) {
	path := c.projectPath("milestones", strconv.Itoa(milestoneID), "issues")
	var all []Issue
	err := c.paginate(ctx, "list milestone issues", path, url.Values{}, func(dec *json.Decoder) error {
		var page []Issue
		if err := dec.Decode(&page); err != nil {
			return err
		}
		all = append(all, page...)
		return nil
	})
	return all, err
}

// ListIssueNotes lists the notes of an issue in creation order, following pagination.
func (c *Client) ListIssueNotes(ctx context.Context, iid int) ([]Note, error) {
	path := c.projectPath("issues", strconv.Itoa(iid), "notes")
	query := url.Values{}
	query.Set("sort", "asc")
	query.Set("order_by", "created_at")

	var all []Note
	err := c.paginate(ctx, "list issue notes", path, query, func(dec *json.Decoder) error {
		var page []Note
		if err := dec.Decode(&page); err != nil {
			return err
		}
		all = append(all, page...)
		return nil
	})
	return all, err
}

// UpdateMilestone edits a milestone via PUT /projects/:id/milestones/:milestone_id.
func (c *Client) UpdateMilestone(ctx context.Context, milestoneID int, req UpdateMilestoneRequest) (*Milestone, error) {
	var m Milestone
	if err := c.do(ctx, "update milestone", http.MethodPut, c.projectPath("milestones", strconv.Itoa(milestoneID)), req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) projectPath(parts ...string) string {
	return fmt.Sprintf("%s/projects/%s/%s", c.baseURL, c.projectID, strings.Join(parts, "/"))
}

// paginate walks pages using the X-Next-Page header until it is empty.
func (c *Client) paginate(ctx context.Context, op, path string, query url.Values, decode func(*json.Decoder) error) error {
	query.Set("per_page", strconv.Itoa(perPage))
	page := "1"
	for page != "" {
		query.Set("page", page)

		resp, err := c.send(ctx, op, http.MethodGet, path+"?"+query.Encode(), nil)
		if err != nil {
			return err
		}

		err = decode(json.NewDecoder(resp.Body))
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to decode gitlab %s response: %w", op, err)
		}

		page = resp.Header.Get("X-Next-Page")
	}
	return nil
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, body, out any) error {
	resp, err := c.send(ctx, op, method, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gitlab %s response: %w", op, err)
	}
	return nil
}

// send performs the request and returns the response when the status is 2xx.
// The caller owns the body.
func (c *Client) send(ctx context.Context, op, method, endpoint string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal gitlab %s request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build gitlab %s request: %w", op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call gitlab %s API: %w", op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, nil
}

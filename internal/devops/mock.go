package devops

import (
	"context"
	"encoding/json"
	"fmt"
)

// MockClient implements APIClient for testing
type MockClient struct {
	// Responses maps a full URL to the body returned for it
	Responses map[string]string
	// Errors maps a full URL to the error returned for it
	Errors map[string]error

	// Requested records every URL in call order
	Requested []string
}

// Ensure MockClient implements APIClient interface
var _ APIClient = (*MockClient)(nil)

func NewMockClient() *MockClient {
	return &MockClient{
		Responses: map[string]string{},
		Errors:    map[string]error{},
	}
}

// Get returns the registered body or error for rawURL
func (m *MockClient) Get(_ context.Context, rawURL string) ([]byte, error) {
	m.Requested = append(m.Requested, rawURL)
	if err, ok := m.Errors[rawURL]; ok {
		return nil, err
	}
	body, ok := m.Responses[rawURL]
	if !ok {
		return nil, fmt.Errorf("no response registered for %s", rawURL)
	}
	return []byte(body), nil
}

// Error helpers for testing error conditions
func NewAPIError(message string) error {
	return fmt.Errorf("API error: %s", message)
}

func NewNetworkError() error {
	return fmt.Errorf("network connection failed")
}

// Fixture shapes for building API responses in tests. They marshal to the
// same JSON the service returns.

type FixturePullRequest struct {
	ID     int
	Title  string
	Author string
}

type FixtureReviewer struct {
	DisplayName string
	Vote        int
}

type FixtureComment struct {
	Author          string
	Content         string
	CommentType     string
	ParentCommentID int
}

// PullRequestListBody renders a listing response
func PullRequestListBody(prs ...FixturePullRequest) string {
	value := make([]map[string]interface{}, 0, len(prs))
	for _, pr := range prs {
		value = append(value, map[string]interface{}{
			"pullRequestId": pr.ID,
			"title":         pr.Title,
			"status":        "completed",
			"createdBy":     map[string]interface{}{"displayName": pr.Author},
		})
	}
	return envelope(value)
}

// ReviewersBody renders a reviewers response
func ReviewersBody(reviewers ...FixtureReviewer) string {
	value := make([]map[string]interface{}, 0, len(reviewers))
	for _, r := range reviewers {
		value = append(value, map[string]interface{}{
			"displayName": r.DisplayName,
			"vote":        r.Vote,
		})
	}
	return envelope(value)
}

// ThreadsBody renders a threads response, one thread per argument. An empty
// CommentType defaults to "text".
func ThreadsBody(threads ...[]FixtureComment) string {
	value := make([]map[string]interface{}, 0, len(threads))
	for i, thread := range threads {
		comments := make([]map[string]interface{}, 0, len(thread))
		for j, c := range thread {
			commentType := c.CommentType
			if commentType == "" {
				commentType = textCommentType
			}
			comments = append(comments, map[string]interface{}{
				"id":              j + 1,
				"parentCommentId": c.ParentCommentID,
				"content":         c.Content,
				"commentType":     commentType,
				"author":          map[string]interface{}{"displayName": c.Author},
			})
		}
		value = append(value, map[string]interface{}{
			"id":       i + 1,
			"comments": comments,
		})
	}
	return envelope(value)
}

func envelope(value interface{}) string {
	b, err := json.Marshal(map[string]interface{}{"value": value})
	if err != nil {
		panic(err)
	}
	return string(b)
}

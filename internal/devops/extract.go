package devops

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ryo246912/devops-pr-stats/internal/models"
)

// ErrMalformedResponse is returned when a response lacks a required field
var ErrMalformedResponse = errors.New("malformed response")

// ContentPlaceholder stands in for a comment that has no content field
const ContentPlaceholder = "-"

const textCommentType = "text"

// Wire shapes. Required fields are pointers so that absence can be told
// apart from a zero value.
type identityRef struct {
	DisplayName *string `json:"displayName"`
}

type pullRequestEntry struct {
	PullRequestID *int         `json:"pullRequestId"`
	Title         *string      `json:"title"`
	CreatedBy     *identityRef `json:"createdBy"`
}

type reviewerEntry struct {
	DisplayName *string `json:"displayName"`
	Vote        *int    `json:"vote"`
}

type threadEntry struct {
	Comments []commentEntry `json:"comments"`
}

type commentEntry struct {
	CommentType     string       `json:"commentType"`
	Content         *string      `json:"content"`
	ParentCommentID int          `json:"parentCommentId"`
	Author          *identityRef `json:"author"`
}

// decodeValue unwraps the {"value": [...]} envelope every list endpoint uses.
func decodeValue(body []byte, out interface{}) error {
	var envelope struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope.Value == nil {
		return fmt.Errorf("%w: missing value field", ErrMalformedResponse)
	}
	if err := json.Unmarshal(envelope.Value, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// ExtractPullRequests maps a pull request listing to records, in listing order.
func ExtractPullRequests(body []byte) ([]models.PullRequest, error) {
	var entries []pullRequestEntry
	if err := decodeValue(body, &entries); err != nil {
		return nil, err
	}

	prs := make([]models.PullRequest, 0, len(entries))
	for i, e := range entries {
		switch {
		case e.PullRequestID == nil:
			return nil, fmt.Errorf("%w: pull request %d has no pullRequestId", ErrMalformedResponse, i)
		case e.Title == nil:
			return nil, fmt.Errorf("%w: pull request %d has no title", ErrMalformedResponse, *e.PullRequestID)
		case e.CreatedBy == nil || e.CreatedBy.DisplayName == nil:
			return nil, fmt.Errorf("%w: pull request %d has no createdBy.displayName", ErrMalformedResponse, *e.PullRequestID)
		}
		prs = append(prs, models.PullRequest{
			ID:     *e.PullRequestID,
			Title:  *e.Title,
			Author: *e.CreatedBy.DisplayName,
		})
	}
	return prs, nil
}

// ExtractReviewVotes keeps reviewers who cast a vote. A vote of 0 means the
// reviewer was only assigned.
func ExtractReviewVotes(body []byte, pullRequestID int, title string) ([]models.ReviewVote, error) {
	var entries []reviewerEntry
	if err := decodeValue(body, &entries); err != nil {
		return nil, err
	}

	var votes []models.ReviewVote
	for i, e := range entries {
		if e.Vote == nil {
			return nil, fmt.Errorf("%w: reviewer %d of pull request %d has no vote", ErrMalformedResponse, i, pullRequestID)
		}
		if *e.Vote == 0 {
			continue
		}
		if e.DisplayName == nil {
			return nil, fmt.Errorf("%w: reviewer %d of pull request %d has no displayName", ErrMalformedResponse, i, pullRequestID)
		}
		votes = append(votes, models.ReviewVote{
			PullRequestID: pullRequestID,
			Title:         title,
			Reviewer:      *e.DisplayName,
			Vote:          *e.Vote,
		})
	}
	return votes, nil
}

// ExtractComments flattens the text comments of every thread. Comments
// shorter than minLength characters are dropped, and so are replies unless
// includeReplies is set.
func ExtractComments(body []byte, pullRequestID int, title string, minLength int, includeReplies bool) ([]models.Comment, error) {
	var threads []threadEntry
	if err := decodeValue(body, &threads); err != nil {
		return nil, err
	}

	var comments []models.Comment
	for _, thread := range threads {
		for _, c := range thread.Comments {
			if c.CommentType != textCommentType {
				continue
			}

			content := ContentPlaceholder
			if c.Content != nil {
				content = *c.Content
			}
			if utf8.RuneCountInString(content) < minLength {
				continue
			}

			isReply := c.ParentCommentID != 0
			if isReply && !includeReplies {
				continue
			}

			if c.Author == nil || c.Author.DisplayName == nil {
				return nil, fmt.Errorf("%w: comment on pull request %d has no author.displayName", ErrMalformedResponse, pullRequestID)
			}
			comments = append(comments, models.Comment{
				PullRequestID: pullRequestID,
				Title:         title,
				Author:        *c.Author.DisplayName,
				Body:          content,
				IsReply:       isReply,
			})
		}
	}
	return comments, nil
}

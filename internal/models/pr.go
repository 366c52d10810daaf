package models

// PullRequest represents a completed pull request from the listing endpoint
type PullRequest struct {
	ID     int    `json:"pullRequestId"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// ReviewVote represents a reviewer who cast a non-zero vote on a pull request
type ReviewVote struct {
	PullRequestID int    `json:"pullRequestId"`
	Title         string `json:"title"`
	Reviewer      string `json:"reviewer"`
	Vote          int    `json:"vote"`
}

// Comment represents a text comment from a pull request thread
type Comment struct {
	PullRequestID int    `json:"pullRequestId"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Body          string `json:"body"`
	IsReply       bool   `json:"isReply"`
}

// Collection holds everything fetched in one run, in fetch order
type Collection struct {
	PullRequests []PullRequest
	Votes        []ReviewVote
	Comments     []Comment
}

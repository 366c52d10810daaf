package devops

import (
	"fmt"
	"net/url"
)

// Repository identifies one Git repository inside an Azure DevOps project
// and builds the endpoint URLs the aggregator calls.
type Repository struct {
	BaseURL      string
	Organization string
	Project      string
	ID           string
	APIVersion   string
}

func (r Repository) root() string {
	return fmt.Sprintf("%s/%s/%s/_apis/git/repositories/%s",
		r.BaseURL,
		url.PathEscape(r.Organization),
		url.PathEscape(r.Project),
		url.PathEscape(r.ID),
	)
}

// CompletedPullRequestsURL lists at most top completed pull requests, newest first.
func (r Repository) CompletedPullRequestsURL(top int) string {
	return fmt.Sprintf("%s/pullrequests?searchCriteria.status=completed&$top=%d&api-version=%s",
		r.root(), top, url.QueryEscape(r.APIVersion))
}

func (r Repository) ReviewersURL(pullRequestID int) string {
	return fmt.Sprintf("%s/pullRequests/%d/reviewers?api-version=%s",
		r.root(), pullRequestID, url.QueryEscape(r.APIVersion))
}

func (r Repository) ThreadsURL(pullRequestID int) string {
	return fmt.Sprintf("%s/pullRequests/%d/threads?api-version=%s",
		r.root(), pullRequestID, url.QueryEscape(r.APIVersion))
}

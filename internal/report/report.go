// Package report filters a fetched collection down to one person's activity
// and renders it as markdown, HTML or a spreadsheet.
package report

import "github.com/ryo246912/devops-pr-stats/internal/models"

// Report is the per-person view of one run's collection
type Report struct {
	Identity          string
	TotalPullRequests int
	MyPullRequests    []models.PullRequest
	MyReviews         []models.ReviewVote
	MyComments        []models.Comment
}

// Build selects the records belonging to identity by exact display name match.
//
// Replies never count as the person's comments, even when the collection was
// fetched with replies included.
// TODO: let the include-replies setting reach this filter once the intended
// behavior for reply comments is settled.
func Build(identity string, c *models.Collection) *Report {
	r := &Report{
		Identity:          identity,
		TotalPullRequests: len(c.PullRequests),
		MyPullRequests:    []models.PullRequest{},
		MyReviews:         []models.ReviewVote{},
		MyComments:        []models.Comment{},
	}

	for _, pr := range c.PullRequests {
		if pr.Author == identity {
			r.MyPullRequests = append(r.MyPullRequests, pr)
		}
	}
	for _, v := range c.Votes {
		if v.Reviewer == identity {
			r.MyReviews = append(r.MyReviews, v)
		}
	}
	for _, cm := range c.Comments {
		if cm.Author == identity && !cm.IsReply {
			r.MyComments = append(r.MyComments, cm)
		}
	}
	return r
}

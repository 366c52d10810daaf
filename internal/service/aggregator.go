package service

import (
	"context"
	"fmt"

	"github.com/ryo246912/devops-pr-stats/internal/devops"
	"github.com/ryo246912/devops-pr-stats/internal/models"
	"github.com/ryo246912/devops-pr-stats/internal/ui"
	"github.com/sirupsen/logrus"
)

// FetchOptions controls one aggregation run
type FetchOptions struct {
	// PageSize caps the listing; only the newest PageSize completed pull
	// requests are fetched, there is no further paging.
	PageSize         int
	MinCommentLength int
	IncludeReplies   bool
}

// Aggregator fetches completed pull requests with their votes and comments
type Aggregator struct {
	client   devops.APIClient
	repo     devops.Repository
	progress ui.Progress
	log      logrus.FieldLogger
}

func NewAggregator(client devops.APIClient, repo devops.Repository, progress ui.Progress, log logrus.FieldLogger) *Aggregator {
	if progress == nil {
		progress = ui.NopProgress{}
	}
	return &Aggregator{
		client:   client,
		repo:     repo,
		progress: progress,
		log:      log,
	}
}

// FetchAll lists completed pull requests, then fetches reviewers and threads
// for each one in listing order. Any failed request aborts the whole run.
func (a *Aggregator) FetchAll(ctx context.Context, opts FetchOptions) (*models.Collection, error) {
	listURL := a.repo.CompletedPullRequestsURL(opts.PageSize)
	a.log.WithField("url", listURL).Debug("listing completed pull requests")

	body, err := a.client.Get(ctx, listURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}
	prs, err := devops.ExtractPullRequests(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pull request list: %w", err)
	}

	if len(prs) >= opts.PageSize {
		a.log.Warnf("listing returned the maximum of %d pull requests; older completed pull requests were not fetched", opts.PageSize)
	}

	collection := &models.Collection{}

	a.progress.Start(len(prs))
	defer a.progress.Finish()

	for _, pr := range prs {
		collection.PullRequests = append(collection.PullRequests, pr)

		votes, err := a.fetchVotes(ctx, pr)
		if err != nil {
			return nil, err
		}
		collection.Votes = append(collection.Votes, votes...)

		comments, err := a.fetchComments(ctx, pr, opts)
		if err != nil {
			return nil, err
		}
		collection.Comments = append(collection.Comments, comments...)

		a.log.WithFields(logrus.Fields{
			"pull_request_id": pr.ID,
			"votes":           len(votes),
			"comments":        len(comments),
		}).Debug("pull request fetched")
		a.progress.Advance(pr.Title)
	}

	return collection, nil
}

func (a *Aggregator) fetchVotes(ctx context.Context, pr models.PullRequest) ([]models.ReviewVote, error) {
	body, err := a.client.Get(ctx, a.repo.ReviewersURL(pr.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviewers of pull request %d: %w", pr.ID, err)
	}
	votes, err := devops.ExtractReviewVotes(body, pr.ID, pr.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to read reviewers of pull request %d: %w", pr.ID, err)
	}
	return votes, nil
}

func (a *Aggregator) fetchComments(ctx context.Context, pr models.PullRequest, opts FetchOptions) ([]models.Comment, error) {
	body, err := a.client.Get(ctx, a.repo.ThreadsURL(pr.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threads of pull request %d: %w", pr.ID, err)
	}
	comments, err := devops.ExtractComments(body, pr.ID, pr.Title, opts.MinCommentLength, opts.IncludeReplies)
	if err != nil {
		return nil, fmt.Errorf("failed to read threads of pull request %d: %w", pr.ID, err)
	}
	return comments, nil
}

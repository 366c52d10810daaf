package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ryo246912/devops-pr-stats/internal/devops"
	"github.com/ryo246912/devops-pr-stats/internal/report"
	"github.com/ryo246912/devops-pr-stats/internal/ui"
	"github.com/sirupsen/logrus"
)

// Defaults for inputs that are neither given nor prompted
const (
	DefaultFetch          = 200
	DefaultCommentTrim    = 50
	DefaultIncludeReplies = true
)

// Inputs are the per-run parameters
type Inputs struct {
	DisplayName    string
	Fetch          int
	CommentTrim    int
	IncludeReplies bool
}

// Given marks which Inputs were set on the command line
type Given struct {
	DisplayName    bool
	Fetch          bool
	CommentTrim    bool
	IncludeReplies bool
}

// Outputs names the files to write. Markdown defaults to "<display name>.md";
// empty HTML and XLSX paths skip those exports.
type Outputs struct {
	Markdown string
	HTML     string
	XLSX     string
}

// StatsService contains the business logic
type StatsService struct {
	aggregator *Aggregator
	repo       devops.Repository
	prompter   ui.Prompter
	console    io.Writer
	log        logrus.FieldLogger
}

// NewStatsService creates a new service instance
func NewStatsService(
	client devops.APIClient,
	repo devops.Repository,
	prompter ui.Prompter,
	progress ui.Progress,
	console io.Writer,
	log logrus.FieldLogger,
) *StatsService {
	return &StatsService{
		aggregator: NewAggregator(client, repo, progress, log),
		repo:       repo,
		prompter:   prompter,
		console:    console,
		log:        log,
	}
}

// ResolveInputs asks for every input not given on the command line, with the
// current value as default. Without interactive the current values stand.
func (s *StatsService) ResolveInputs(in Inputs, given Given, interactive bool) (Inputs, error) {
	var err error
	if interactive {
		if !given.DisplayName {
			if in.DisplayName, err = s.prompter.PromptName(in.DisplayName); err != nil {
				return Inputs{}, fmt.Errorf("failed to read name: %w", err)
			}
		}
		if !given.Fetch {
			if in.Fetch, err = s.prompter.PromptInt(ui.LabelFetch, in.Fetch); err != nil {
				return Inputs{}, fmt.Errorf("failed to read fetch count: %w", err)
			}
		}
		if !given.CommentTrim {
			if in.CommentTrim, err = s.prompter.PromptInt(ui.LabelCommentTrim, in.CommentTrim); err != nil {
				return Inputs{}, fmt.Errorf("failed to read comment length: %w", err)
			}
		}
		if !given.IncludeReplies {
			if in.IncludeReplies, err = s.prompter.PromptBool(ui.LabelIncludeReplies, in.IncludeReplies); err != nil {
				return Inputs{}, fmt.Errorf("failed to read reply setting: %w", err)
			}
		}
	}

	if err := ValidateInputs(in); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

// ValidateInputs checks the parameters of a run
func ValidateInputs(in Inputs) error {
	if strings.TrimSpace(in.DisplayName) == "" {
		return fmt.Errorf("display name is required")
	}
	if in.Fetch <= 0 {
		return fmt.Errorf("fetch count must be positive")
	}
	if in.CommentTrim < 0 {
		return fmt.Errorf("comment length must not be negative")
	}
	return nil
}

// ProcessReport handles the complete workflow: fetch, filter, write
func (s *StatsService) ProcessReport(ctx context.Context, in Inputs, out Outputs) (*report.Report, error) {
	if err := ValidateInputs(in); err != nil {
		return nil, err
	}
	if out.Markdown == "" {
		out.Markdown = in.DisplayName + ".md"
	}
	log := s.log.WithField("identity", in.DisplayName)

	log.Info("getting pull requests")
	collection, err := s.aggregator.FetchAll(ctx, FetchOptions{
		PageSize:         in.Fetch,
		MinCommentLength: in.CommentTrim,
		IncludeReplies:   in.IncludeReplies,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull requests: %w", err)
	}

	r := report.Build(in.DisplayName, collection)
	ui.PrintCounts(s.console, []ui.CountLine{
		{Label: fmt.Sprintf("My PR's (%s):", in.DisplayName), Count: len(r.MyPullRequests)},
		{Label: fmt.Sprintf("My Reviews (%s):", in.DisplayName), Count: len(r.MyReviews)},
		{Label: fmt.Sprintf("My Comments (%s):", in.DisplayName), Count: len(r.MyComments)},
	})

	heading := report.Heading(in.DisplayName, s.repo.Project, s.repo.ID)
	doc, err := report.WriteMarkdown(out.Markdown, heading, r, s.console)
	if err != nil {
		return nil, err
	}
	log.WithField("output", out.Markdown).Info("report written")

	if out.HTML != "" {
		title := strings.TrimSpace(strings.TrimPrefix(heading, "#"))
		if err := report.WriteHTML(out.HTML, title, doc); err != nil {
			return nil, err
		}
		log.WithField("output", out.HTML).Info("HTML report written")
	}
	if out.XLSX != "" {
		if err := report.WriteWorkbook(out.XLSX, r); err != nil {
			return nil, err
		}
		log.WithField("output", out.XLSX).Info("workbook written")
	}

	return r, nil
}

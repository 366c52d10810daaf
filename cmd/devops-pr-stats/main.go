package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ryo246912/devops-pr-stats/internal/config"
	"github.com/ryo246912/devops-pr-stats/internal/devops"
	"github.com/ryo246912/devops-pr-stats/internal/logger"
	"github.com/ryo246912/devops-pr-stats/internal/service"
	"github.com/ryo246912/devops-pr-stats/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	name           string
	fetch          int
	commentTrim    int
	includeReplies bool

	output  string
	html    string
	xlsx    string
	envFile string

	noPrompt bool
	verbose  bool
}

func runCommand(cmd *cobra.Command, opts *options) error {
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	log := logger.New(level, cmd.ErrOrStderr())
	log.WithFields(logrus.Fields{
		"organization": cfg.Organization,
		"project":      cfg.Project,
		"repository":   cfg.Repository,
		"user":         cfg.User,
	}).Debug("configuration loaded")

	// Route go-gh's HTTP trace into the debug log
	var httpLog io.Writer
	if log.IsLevelEnabled(logrus.DebugLevel) {
		w := log.WriterLevel(logrus.DebugLevel)
		defer w.Close()
		httpLog = w
	}

	client, err := devops.NewClient(devops.ClientOptions{
		BaseURL: cfg.BaseURL,
		PAT:     cfg.PAT,
		Log:     httpLog,
	})
	if err != nil {
		return fmt.Errorf("failed to create Azure DevOps client: %w", err)
	}

	repo := devops.Repository{
		BaseURL:      cfg.BaseURL,
		Organization: cfg.Organization,
		Project:      cfg.Project,
		ID:           cfg.Repository,
		APIVersion:   cfg.APIVersion,
	}
	statsService := service.NewStatsService(
		client,
		repo,
		&ui.DefaultPrompter{},
		ui.NewBarProgress(cmd.ErrOrStderr()),
		cmd.OutOrStdout(),
		log,
	)

	flags := cmd.Flags()
	in := service.Inputs{
		DisplayName:    opts.name,
		Fetch:          opts.fetch,
		CommentTrim:    opts.commentTrim,
		IncludeReplies: opts.includeReplies,
	}
	given := service.Given{
		DisplayName:    flags.Changed("name"),
		Fetch:          flags.Changed("fetch"),
		CommentTrim:    flags.Changed("comment-trim"),
		IncludeReplies: flags.Changed("include-replies"),
	}
	if !given.DisplayName && cfg.DisplayName != "" {
		in.DisplayName = cfg.DisplayName
		given.DisplayName = true
	}

	in, err = statsService.ResolveInputs(in, given, !opts.noPrompt)
	if err != nil {
		return err
	}

	_, err = statsService.ProcessReport(cmd.Context(), in, service.Outputs{
		Markdown: opts.output,
		HTML:     opts.html,
		XLSX:     opts.xlsx,
	})
	return err
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "devops-pr-stats",
		Short: "Report your pull requests, reviews and comments in an Azure DevOps repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.name, "name", "", "The display name in Azure DevOps (env DEVOPS_DISPLAY_NAME)")
	flags.IntVar(&opts.fetch, "fetch", service.DefaultFetch, "How many rows to fetch")
	flags.IntVar(&opts.commentTrim, "comment-trim", service.DefaultCommentTrim, "Ignore comments shorter than this length")
	flags.BoolVar(&opts.includeReplies, "include-replies", service.DefaultIncludeReplies, "Include my comments that are replies to other comments")
	flags.StringVarP(&opts.output, "output", "o", "", "Markdown report path (default \"<name>.md\")")
	flags.StringVar(&opts.html, "html", "", "Also write the report as HTML to this path")
	flags.StringVar(&opts.xlsx, "xlsx", "", "Also write the report as a spreadsheet to this path")
	flags.StringVar(&opts.envFile, "env-file", "", "Load environment variables from this file instead of .env")
	flags.BoolVar(&opts.noPrompt, "no-prompt", false, "Use defaults instead of asking for missing values")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

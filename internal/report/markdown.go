package report

import (
	"fmt"
	"strings"
)

// Heading returns the document title line
func Heading(name, project, repository string) string {
	return fmt.Sprintf("# Stats for %s in %s - %s\n", name, project, repository)
}

// Sections renders the summary and the three tables, in document order
func (r *Report) Sections() []string {
	return []string{
		r.summarySection(),
		r.pullRequestSection(),
		r.reviewSection(),
		r.commentSection(),
	}
}

// Markdown joins heading and sections exactly as Writer lays them out in the file
func (r *Report) Markdown(heading string) string {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	for _, s := range r.Sections() {
		b.WriteString(s)
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Report) summarySection() string {
	return fmt.Sprintf(`## Summary

- PR's: %d
- My PR's: %d
- My reviews: %d
- My comments: %d
`, r.TotalPullRequests, len(r.MyPullRequests), len(r.MyReviews), len(r.MyComments))
}

func (r *Report) pullRequestSection() string {
	var b strings.Builder
	b.WriteString("## My PR's\n\n|ID|Name|\n|-|-|\n")
	for _, pr := range r.MyPullRequests {
		fmt.Fprintf(&b, "|%d|%s|\n", pr.ID, cell(pr.Title))
	}
	return b.String()
}

func (r *Report) reviewSection() string {
	var b strings.Builder
	b.WriteString("## PR's that I reviewed\n\n|ID|Name|\n|-|-|\n")
	for _, v := range r.MyReviews {
		fmt.Fprintf(&b, "|%d|%s|\n", v.PullRequestID, cell(v.Title))
	}
	return b.String()
}

func (r *Report) commentSection() string {
	var b strings.Builder
	b.WriteString("## PR's that I commented on\n\n|ID|Name|Comment|\n|-|-|-|\n")
	for _, c := range r.MyComments {
		fmt.Fprintf(&b, "|%d|%s|%s|\n", c.PullRequestID, cell(c.Title), cell(c.Body))
	}
	return b.String()
}

var cellReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"|", `\|`,
)

// cell keeps text inside one table cell of one row
func cell(text string) string {
	return cellReplacer.Replace(text)
}

package report

import (
	"testing"

	"github.com/ryo246912/devops-pr-stats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeading(t *testing.T) {
	assert.Equal(t, "# Stats for X in Fabrikam - backend\n", Heading("X", "Fabrikam", "backend"))
}

func TestReport_Sections(t *testing.T) {
	r := &Report{
		Identity:          "X",
		TotalPullRequests: 3,
		MyPullRequests:    []models.PullRequest{{ID: 42, Title: "Fix bug", Author: "X"}},
		MyReviews:         []models.ReviewVote{{PullRequestID: 40, Title: "Bump deps", Reviewer: "X", Vote: 10}},
		MyComments: []models.Comment{
			{PullRequestID: 41, Title: "Refactor", Author: "X", Body: "line one\nline two"},
		},
	}

	sections := r.Sections()

	require.Len(t, sections, 4)
	assert.Equal(t, "## Summary\n\n- PR's: 3\n- My PR's: 1\n- My reviews: 1\n- My comments: 1\n", sections[0])
	assert.Equal(t, "## My PR's\n\n|ID|Name|\n|-|-|\n|42|Fix bug|\n", sections[1])
	assert.Equal(t, "## PR's that I reviewed\n\n|ID|Name|\n|-|-|\n|40|Bump deps|\n", sections[2])
	assert.Equal(t, "## PR's that I commented on\n\n|ID|Name|Comment|\n|-|-|-|\n|41|Refactor|line one line two|\n", sections[3])
}

func TestCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text", input: "Fix bug", expected: "Fix bug"},
		{name: "unix newline", input: "a\nb", expected: "a b"},
		{name: "windows newline", input: "a\r\nb", expected: "a b"},
		{name: "bare carriage return", input: "a\rb", expected: "a b"},
		{name: "pipe", input: "a | b", expected: `a \| b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cell(tt.input))
		})
	}
}

func TestReport_Sections_EscapesTableCells(t *testing.T) {
	r := &Report{
		MyPullRequests: []models.PullRequest{{ID: 1, Title: "A|B"}},
		MyReviews:      []models.ReviewVote{{PullRequestID: 2, Title: "C|D"}},
		MyComments: []models.Comment{
			{PullRequestID: 3, Title: "E|F", Body: "x|y\r\nz"},
		},
	}

	sections := r.Sections()

	assert.Contains(t, sections[1], "|1|A\\|B|\n")
	assert.Contains(t, sections[2], "|2|C\\|D|\n")
	assert.Contains(t, sections[3], "|3|E\\|F|x\\|y z|\n")

	html, err := RenderHTML(r.Markdown(Heading("X", "P", "R")))
	require.NoError(t, err)
	assert.Contains(t, html, "y z</td>")
}

func TestReport_Markdown_EmptyTables(t *testing.T) {
	r := Build("Y", &models.Collection{})

	expected := "# Stats for Y in P - R\n" +
		"\n" +
		"## Summary\n\n- PR's: 0\n- My PR's: 0\n- My reviews: 0\n- My comments: 0\n" +
		"\n" +
		"## My PR's\n\n|ID|Name|\n|-|-|\n" +
		"\n" +
		"## PR's that I reviewed\n\n|ID|Name|\n|-|-|\n" +
		"\n" +
		"## PR's that I commented on\n\n|ID|Name|Comment|\n|-|-|-|\n" +
		"\n"

	assert.Equal(t, expected, r.Markdown(Heading("Y", "P", "R")))
}

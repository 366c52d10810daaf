package ui

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

const progressTitleWidth = 40

// BarProgress draws a terminal progress bar, one step per pull request
type BarProgress struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func NewBarProgress(out io.Writer) *BarProgress {
	return &BarProgress{out: out}
}

func (p *BarProgress) Start(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription("pull requests"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}

// Advance moves the bar one step and shows the title of the finished pull request
func (p *BarProgress) Advance(title string) {
	if p.bar == nil {
		return
	}
	p.bar.Describe(PadRight(Truncate(title, progressTitleWidth), progressTitleWidth))
	_ = p.bar.Add(1)
}

func (p *BarProgress) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}

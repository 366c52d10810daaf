package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarProgress_AdvanceBeforeStartIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	p := NewBarProgress(&buf)

	p.Advance("Fix bug")
	p.Finish()

	assert.Empty(t, buf.String())
}

func TestBarProgress_WritesTitles(t *testing.T) {
	var buf bytes.Buffer
	p := NewBarProgress(&buf)

	p.Start(3)
	p.Advance("Fix bug")
	p.Advance("Add feature")

	assert.Contains(t, buf.String(), "Add feature")
	assert.Contains(t, buf.String(), "2/3")
}

func TestMockProgress_RecordsTicks(t *testing.T) {
	var p Progress = &MockProgress{}
	p.Start(3)
	p.Advance("a")
	p.Advance("b")
	p.Finish()

	m := p.(*MockProgress)
	assert.Equal(t, 3, m.Total)
	assert.Equal(t, []string{"a", "b"}, m.Titles)
	assert.True(t, m.Finished)
}

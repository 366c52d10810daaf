package report

import (
	"fmt"
	"io"
	"os"
)

// Writer appends report chunks to a file as they are ready and echoes each
// chunk to a console writer. A failure part way leaves a truncated file.
type Writer struct {
	path string
	echo io.Writer
}

// Create truncates path and writes the heading. The heading is not echoed.
func Create(path, heading string, echo io.Writer) (*Writer, error) {
	if err := os.WriteFile(path, []byte(heading+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return &Writer{path: path, echo: echo}, nil
}

func (w *Writer) Path() string {
	return w.path
}

// Append adds chunk and a trailing newline to the file, then echoes it
func (w *Writer) Append(chunk string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open report file: %w", err)
	}
	if _, err := io.WriteString(f, chunk+"\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}

	if w.echo != nil {
		fmt.Fprintln(w.echo, chunk)
	}
	return nil
}

// WriteMarkdown creates the report file and appends every section in order.
// It returns the full document.
func WriteMarkdown(path, heading string, r *Report, echo io.Writer) (string, error) {
	w, err := Create(path, heading, echo)
	if err != nil {
		return "", err
	}
	for _, section := range r.Sections() {
		if err := w.Append(section); err != nil {
			return "", err
		}
	}
	return r.Markdown(heading), nil
}

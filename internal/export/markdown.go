package export

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/mrz1836/opsdeck/internal/errors"
	"github.com/mrz1836/opsdeck/internal/taskview"
)

var (
	termRenderer     *glamour.TermRenderer //nolint:gochecknoglobals // cached renderer for performance
	termRendererOnce sync.Once             //nolint:gochecknoglobals // sync.Once for renderer initialization
)

// getTermRenderer returns a cached glamour renderer for terminal markdown
// output. The renderer is initialized once and reused across all calls.
func getTermRenderer() *glamour.TermRenderer {
	termRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			termRenderer = r
		}
	})
	return termRenderer
}

// WriteMarkdown renders buckets as a plain markdown document: one section
// per group, top-level tasks as list items, subtasks nested beneath them.
func WriteMarkdown(w io.Writer, buckets []taskview.Bucket, dir *taskview.Directory) error {
	_, err := io.WriteString(w, Markdown(buckets, dir))
	return errors.Wrap(err, "failed to write markdown")
}

// WriteTerminalMarkdown renders buckets as markdown styled for the
// terminal. Falls back to plain markdown when the renderer is unavailable.
func WriteTerminalMarkdown(w io.Writer, buckets []taskview.Bucket, dir *taskview.Directory) error {
	md := Markdown(buckets, dir)
	if r := getTermRenderer(); r != nil {
		if rendered, err := r.Render(md); err == nil {
			md = rendered
		}
	}
	_, err := io.WriteString(w, md)
	return errors.Wrap(err, "failed to write markdown")
}

// Markdown builds the markdown document for the buckets.
func Markdown(buckets []taskview.Bucket, dir *taskview.Directory) string {
	var b strings.Builder
	for i, bucket := range buckets {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", bucket.Label)
		for _, n := range bucket.Tasks {
			writeItem(&b, n, dir, 0)
		}
	}
	return b.String()
}

func writeItem(b *strings.Builder, n *taskview.Node, dir *taskview.Directory, depth int) {
	b.WriteString(indent(depth))
	b.WriteString("- ")
	if n.DisplayID != 0 {
		fmt.Fprintf(b, "**#%d** ", n.DisplayID)
	}
	b.WriteString(n.Title)
	fmt.Fprintf(b, " (%s, %s", n.Status.Label(), n.Priority.Label())
	if name := assigneeName(n, dir); name != "" {
		fmt.Fprintf(b, ", %s", name)
	}
	if d := dueDate(n.DueDate); d != "" {
		fmt.Fprintf(b, ", due %s", d)
	}
	b.WriteString(")\n")
	for _, sub := range n.Subtasks {
		writeItem(b, sub, dir, depth+1)
	}
}

package output

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for the terminal. An empty style picks one from
// the terminal background.
func RenderMarkdown(md string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

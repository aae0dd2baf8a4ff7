package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot be built (dumb terminals, pipes).
func printMarkdown(src string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Print(src)
		return
	}
	out, err := r.Render(src)
	if err != nil {
		fmt.Print(src)
		return
	}
	fmt.Print(out)
}

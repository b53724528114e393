package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal. It falls back
// to the raw document when styling fails.
func printMarkdown(doc string, plain bool) {
	if plain {
		fmt.Println(doc)
		return
	}
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}

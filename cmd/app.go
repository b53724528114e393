// Package cmd implements the CLI application to analyze a transactions CSV.
package cmd

import (
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "analysis")
	c.Register(&summaryCmd{}, "analysis")
}

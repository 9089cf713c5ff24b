package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List available displays",
	Long:  `Shows the displays compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		listDisplays(cmd.OutOrStdout(), registry.List())
	},
}

func listDisplays(w io.Writer, backends []registry.Backend) {
	if len(backends) == 0 {
		fmt.Fprintln(w, "No displays available.")
		return
	}

	fmt.Fprintln(w, "Available displays:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, b := range backends {
		fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, b.Name, b.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'snake play --display <name>' to use one.")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/tint/cmd/tint"
	"github.com/arthur-debert/tint/internal/version"
)

func main() {
	rootCmd := tint.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TINT",
		Section: "1",
		Source:  "tint " + version.Version,
		Manual:  "tint manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

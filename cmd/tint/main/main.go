package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tint/cmd/tint"
	"github.com/arthur-debert/tint/pkg/ui"
)

func main() {
	rootCmd := tint.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

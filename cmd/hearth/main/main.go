package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/hearth/cmd/hearth"
	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/ui/output/styles"
)

func main() {
	rootCmd := hearth.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Only usage mistakes get the help text
		if errors.IsErrorCode(err, errors.ErrMissingArgument) {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Help()
		}

		os.Exit(1)
	}
}

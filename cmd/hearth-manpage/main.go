package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/hearth/cmd/hearth"
	"github.com/arthur-debert/hearth/internal/version"
)

func main() {
	rootCmd := hearth.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "HEARTH",
		Section: "1",
		Source:  "hearth " + version.Version,
		Manual:  "hearth manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/marine-engine/internal/collect"
	"github.com/pdiddy/marine-engine/internal/sources"
	"github.com/pdiddy/marine-engine/pkg/types"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the registered data sources and their categories",
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(os.Stdout, "%-32s  %s\n", "Task", "Category")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 58))

	set := sources.Default(types.SourcesConfig{})
	for _, src := range set {
		fmt.Fprintf(os.Stdout, "%-32s  %s\n", src.Name(), collect.Categorize(src.Name()))
	}
	fmt.Fprintf(os.Stdout, "\n%d sources\n", len(set))
	return nil
}

// Command evals runs MCP tool selection evaluations.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals -suite all
//
// This command loads evaluation test suites and reports on test coverage
// and expected behavior patterns. For actual LLM evaluation, integrate
// the evals package with your LLM testing framework.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akarlsson/pokedex-mcp-server/evals"
)

func main() {
	dir := flag.String("dir", "./evals", "Directory containing eval JSON files")
	suite := flag.String("suite", "all", "Suite to load: tool_selection, confusion_pairs, or all")
	verbose := flag.Bool("verbose", false, "Show detailed test information")
	flag.Parse()

	fmt.Println("Pokédex MCP Server - Evaluation Framework")
	fmt.Println("=========================================")
	fmt.Println()

	switch *suite {
	case "tool_selection":
		loadToolSelection(*dir, *verbose)
	case "confusion_pairs":
		loadConfusionPairs(*dir, *verbose)
	case "all":
		loadToolSelection(*dir, *verbose)
		loadConfusionPairs(*dir, *verbose)
	default:
		fmt.Fprintf(os.Stderr, "Unknown suite: %s\n", *suite)
		os.Exit(1)
	}
}

func loadToolSelection(dir string, verbose bool) {
	path := filepath.Join(dir, "tool_selection.json")
	suite, err := evals.LoadToolSelectionSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tool selection suite: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Tool Selection Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Total Tests: %d\n", len(suite.Tests))
	fmt.Println()

	byCategory := make(map[string]int)
	for _, test := range suite.Tests {
		byCategory[test.Category]++
	}
	fmt.Println("Tests by category:")
	for category, count := range byCategory {
		fmt.Printf("  %-10s %d\n", category, count)
	}
	fmt.Println()

	if verbose {
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %q -> %s\n", test.ID, test.Input, test.ExpectedTool)
		}
		fmt.Println()
	}
}

func loadConfusionPairs(dir string, verbose bool) {
	path := filepath.Join(dir, "confusion_pairs.json")
	suite, err := evals.LoadConfusionPairSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading confusion pair suite: %v\n", err)
		os.Exit(1)
	}

	total := 0
	for _, pair := range suite.Pairs {
		total += len(pair.Tests)
	}

	fmt.Printf("Confusion Pair Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Pairs: %d, Total Tests: %d\n", len(suite.Pairs), total)
	fmt.Println()

	if verbose {
		for _, pair := range suite.Pairs {
			fmt.Printf("  [%s] %v\n", pair.ID, pair.Tools)
			for _, test := range pair.Tests {
				fmt.Printf("    %q -> %s (%s)\n", test.Input, test.Expected, test.Reason)
			}
		}
		fmt.Println()
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/ownref"
)

func main() {
	var (
		fixturesFile = flag.String("fixtures", "", "Path to a TOML fixtures file (built-in fixtures when empty)")
		fixtureName  = flag.String("fixture", "", "Fixture to trace (all fixtures when empty)")
		list         = flag.Bool("list", false, "List fixtures and exit")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
		verbose      = flag.Bool("v", false, "Verbose logging with projection diagnostics")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		ownref.SetLogger(logger)
		ownref.SetDerivedCheck(true)
	}

	fixtures, err := loadFixtures(*fixturesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		for _, fx := range fixtures {
			fmt.Printf("  %-12s %s\n", fx.Name, describeFixture(fx))
		}
		return
	}

	if *interactive {
		if err := runInteractive(fixtures); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(fixtures, *fixtureName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run traces the named fixture, or every fixture when name is empty: it
// wraps the fixture's owner, applies the fixture's narrowing steps one at
// a time, and prints the combinator after each step.
func run(fixtures []fixture, name string) error {
	selected := fixtures
	if name != "" {
		fx, err := findFixture(fixtures, name)
		if err != nil {
			return err
		}
		selected = []fixture{fx}
	}

	for i, fx := range selected {
		if i > 0 {
			fmt.Println()
		}
		if err := trace(fx); err != nil {
			return err
		}
	}
	return nil
}

func trace(fx fixture) error {
	tr, err := newTracer(fx)
	if err != nil {
		return err
	}
	defer tr.close()

	fmt.Printf("Fixture: %s (%s)\n", fx.Name, describeFixture(fx))
	fmt.Printf("  wrap    %s\n", tr.current())

	for _, step := range fx.Steps {
		line, err := tr.apply(step)
		if err != nil {
			return err
		}
		fmt.Printf("  %-7s %s\n", step, line)
	}
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/int-runtime/conformance"
	"github.com/wippyai/int-runtime/oracle"
)

func main() {
	var (
		suiteName   = flag.String("suite", "", "Run a single suite by name")
		list        = flag.Bool("list", false, "List suites and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		digest      = flag.Bool("digest", false, "Print the result digest after the run")
		useOracle   = flag.Bool("oracle", false, "Differentially check native-width vectors against the wasm reference")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ok, err := run(*suiteName, *list, *verbose, *digest, *useOracle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

func run(suiteName string, list, verbose, digest, useOracle bool) (bool, error) {
	ctx := context.Background()

	suites := conformance.Suites()
	if list {
		for _, s := range suites {
			fmt.Printf("%-6s %s (%d cases)\n", s.Name, s.Desc, len(s.Cases))
		}
		return true, nil
	}

	if suiteName != "" {
		var filtered []conformance.Suite
		for _, s := range suites {
			if s.Name == suiteName {
				filtered = append(filtered, s)
			}
		}
		if len(filtered) == 0 {
			return false, fmt.Errorf("unknown suite %q", suiteName)
		}
		suites = filtered
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return false, fmt.Errorf("create logger: %w", err)
		}
		defer l.Sync() //nolint:errcheck
		logger = l
	}
	conformance.SetLogger(logger)

	opts := []conformance.Option{conformance.WithLogger(logger)}
	if useOracle {
		o, err := oracle.New(ctx)
		if err != nil {
			return false, fmt.Errorf("start oracle: %w", err)
		}
		defer o.Close(ctx)
		opts = append(opts, conformance.WithOracle(o))
	}

	report := conformance.NewRunner(opts...).Run(ctx, suites...)

	for _, res := range report.Results {
		if !res.Pass {
			fmt.Println(res)
		}
	}
	fmt.Printf("%d checks, %d failed\n", report.Total, report.Failed)
	if digest {
		fmt.Printf("digest: %016x\n", report.Digest())
	}

	return report.Failed == 0, nil
}

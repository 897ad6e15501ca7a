// Command subgraph-demo builds the canonical fixture pair — a directed
// path and the same path with one extra chord — runs both containment
// checks on them, and prints the verdicts next to the complexity report
// for that size.
package main

import (
	"fmt"
	"os"

	"github.com/hjstephan/subgraph/builder"
	"github.com/hjstephan/subgraph/contain"
)

const (
	demoNodes = 4
	chordFrom = 0
	chordTo   = 2
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "subgraph-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	a, err := builder.Path(demoNodes)()
	if err != nil {
		return err
	}
	b, err := builder.WithEdges(builder.Path(demoNodes), builder.Edge{From: chordFrom, To: chordTo})()
	if err != nil {
		return err
	}

	fmt.Printf("matrix A: directed path on %d nodes\n", demoNodes)
	fmt.Print(a)
	fmt.Printf("\nmatrix B: the same path plus chord %d→%d\n", chordFrom, chordTo)
	fmt.Print(b)

	verdict, kept, err := contain.Compare(a, b)
	if err != nil {
		return err
	}
	fmt.Printf("\nstructural comparison: %s\n", verdict)
	if kept != nil {
		fmt.Printf("retained matrix (%d edges):\n", kept.EdgeCount())
		fmt.Print(kept)
	}

	exact, _, err := contain.CompareExact(a, b)
	if err != nil {
		return err
	}
	fmt.Printf("\nexact comparison:      %s\n", exact)

	report, err := contain.AnalyzeComplexity(demoNodes)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", report)

	return nil
}

package pipeline

import (
	"context"
)

// Pipeline runs raw lines through the parse, validate, enrich and format
// stages. Each stage only runs if the prior one succeeded; the first failure
// becomes the line's result.
type Pipeline interface {
	// ProcessLine runs one raw line through all stages and returns the
	// formatted display string or the first stage error.
	ProcessLine(ctx context.Context, line string) (string, error)
	// ProcessLines processes lines in input order and returns one formatted
	// string per line. On the first failing line it aborts immediately,
	// discards already-collected output and returns that line's error.
	ProcessLines(ctx context.Context, lines []string) ([]string, error)
}

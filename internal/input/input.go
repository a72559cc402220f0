// Package input reads raw lines for the pipeline from stdin, a file, or a
// directory of data files. It is a thin wrapper: lines are right-trimmed and
// blank lines filtered before the pipeline ever sees them.
package input

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"userpipe/pkg/logger"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// StdinSource is the source value selecting stdin as input.
const StdinSource = "-"

// Read loads raw lines from the given source: "-" for stdin, a file path, or
// a directory. Directories are traversed in lexical order and only .csv and
// .txt files are read; other entries are logged and skipped.
func Read(ctx context.Context, source string) ([]string, error) {
	if source == StdinSource {
		return fromReader(os.Stdin)
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat input source %s", source)
	}
	if info.IsDir() {
		return fromDirectory(ctx, source)
	}

	return fromFile(source)
}

// fromReader scans lines from r, trimming trailing whitespace and dropping
// blank lines.
func fromReader(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read input")
	}

	return lines, nil
}

func fromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open input file %s", path)
	}
	defer func() { _ = file.Close() }()

	lines, err := fromReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read input file %s", path)
	}

	return lines, nil
}

// fromDirectory concatenates the lines of all supported files in the
// directory. os.ReadDir already returns entries sorted by filename, which
// fixes the concatenation order.
func fromDirectory(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read directory %s", dir)
	}

	var lines []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			logger.Warn(ctx, "skipping unsupported file", zap.String("file", path))

			continue
		}

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".txt":
			fileLines, err := fromFile(path)
			if err != nil {
				return nil, err
			}
			lines = append(lines, fileLines...)
		default:
			logger.Warn(ctx, "skipping unsupported file", zap.String("file", path))
		}
	}

	return lines, nil
}

// Package output writes the pipeline's formatted results to stdout or a
// file, either as plain text lines or as a single JSON document.
package output

import (
	"bufio"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Write renders the results in the given format to the file at path, or to
// stdout when path is empty.
func Write(path string, results []string, format string) error {
	if path == "" {
		return WriteTo(os.Stdout, results, format)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create output file %s", path)
	}
	defer func() { _ = file.Close() }()

	if err := WriteTo(file, results, format); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "could not close output file %s", path)
	}

	return nil
}

// WriteTo renders the results in the given format to w.
func WriteTo(w io.Writer, results []string, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatText, "":
		return writeText(w, results)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, results []string) error {
	buf := bufio.NewWriter(w)
	for _, line := range results {
		if _, err := buf.WriteString(line + "\n"); err != nil {
			return errors.Wrap(err, "could not write output line")
		}
	}
	if err := buf.Flush(); err != nil {
		return errors.Wrap(err, "could not flush output")
	}

	return nil
}

// writeJSON streams the batch result document
// {"results":[...],"count":N} followed by a trailing newline.
func writeJSON(w io.Writer, results []string) error {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("results", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, line := range results {
					e.Str(line)
				}
			})
		})
		e.Field("count", func(e *jx.Encoder) {
			e.Int(len(results))
		})
	})

	if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
		return errors.Wrap(err, "could not write output document")
	}

	return nil
}

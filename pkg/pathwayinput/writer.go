package pathwayinput

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

// WriteXPositions writes one "key xposition" line per entry to path via a
// temporary file staged alongside it and renamed into place, so a failure
// partway through never leaves a truncated artifact at path. A failure at
// any step is wrapped with path for diagnostics.
func WriteXPositions(entries []XPositionEntry, path string) error {
	return writeLines(path, func(w *bufio.Writer) error {
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s %g\n", e.Key, e.XPosition); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteSequences writes one "from to" line per pair to path, same resource
// policy as WriteXPositions.
func WriteSequences(pairs []SequencePair, path string) error {
	return writeLines(path, func(w *bufio.Writer) error {
		for _, p := range pairs {
			if _, err := fmt.Fprintf(w, "%s %s\n", p.From, p.To); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeLines(path string, body func(w *bufio.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return perrors.Wrap(perrors.CodeWriteFailure, err, "create temp for %s", path)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := bufio.NewWriter(tmp)
	if err := body(w); err != nil {
		tmp.Close()
		return perrors.Wrap(perrors.CodeWriteFailure, err, "write %s", path)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return perrors.Wrap(perrors.CodeWriteFailure, err, "flush %s", path)
	}
	if err := tmp.Close(); err != nil {
		return perrors.Wrap(perrors.CodeWriteFailure, err, "close temp for %s", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return perrors.Wrap(perrors.CodeWriteFailure, err, "rename into %s", path)
	}
	return nil
}

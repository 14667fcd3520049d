/*
PURPOSE:
  Resolves the input document set for a benchmark run and assigns
  stable document identifiers.

REQUIREMENTS:
  User-specified:
  - Accept explicit file paths or a directory to discover.
  - A missing input file aborts the run before any processing begins.

  Implementation-discovered:
  - Document IDs are the first 8 hex chars of the md5 of the path so
    re-runs over the same files produce comparable reports.

ARCHITECTURE INTEGRATION:
  - Called by: internal/runner, internal/cli
  - Uses: nothing beyond the standard library.

ERROR HANDLING:
  - ErrNotFound sentinel, wrapped with the offending path.

IMPLEMENTATION RULES:
  - Directory discovery is shallow and sorted for determinism.

USAGE:
  docs, err := docset.Resolve(paths, dir)

RELATED FILES:
  - internal/runner/bench.go

MAINTENANCE:
  - Extend discoverable extensions as new formats are supported.
*/

package docset

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound indicates a named input document does not exist.
var ErrNotFound = errors.New("document not found")

// Document is one benchmark input.
type Document struct {
	ID   string
	Path string
}

// discoverable image/text extensions for directory scans.
var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".txt":  true,
}

// ID derives the stable short identifier for a document path.
func ID(path string) string {
	sum := md5.Sum([]byte(path))
	return hex.EncodeToString(sum[:])[:8]
}

// Resolve builds the document set from explicit paths and/or a
// directory. Every explicit path is verified to exist up front; a
// missing file fails the whole resolution.
func Resolve(paths []string, dir string) ([]Document, error) {
	var all []string

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		all = append(all, p)
	}

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if !extensions[ext] {
				continue
			}
			all = append(all, filepath.Join(dir, e.Name()))
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w: no input documents", ErrNotFound)
	}

	sort.Strings(all)

	docs := make([]Document, 0, len(all))
	for _, p := range all {
		docs = append(docs, Document{ID: ID(p), Path: p})
	}
	return docs, nil
}

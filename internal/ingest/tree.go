// internal/ingest/tree.go
package ingest

import (
	"context"
	"path"
	"strings"
)

// TreeFS is an FS over a set of slash-separated relative paths, the shape a
// directory drop arrives in over multipart (one path per file part).
type TreeFS struct {
	children map[string][]Entry
}

// NewTree builds a TreeFS from relative file paths and returns the top-level
// entries alongside it. A path with no separator becomes a root file; the
// first segment of a nested path becomes a root directory.
func NewTree(paths []string) ([]Entry, *TreeFS) {
	fsys := &TreeFS{children: make(map[string][]Entry)}
	seenDirs := make(map[string]bool)
	var roots []Entry
	rootDirs := make(map[string]bool)

	for _, p := range paths {
		p = strings.Trim(path.Clean(p), "/")
		if p == "" || p == "." {
			continue
		}

		segments := strings.Split(p, "/")
		if len(segments) == 1 {
			roots = append(roots, Entry{Name: segments[0], Path: p})
			continue
		}

		if !rootDirs[segments[0]] {
			rootDirs[segments[0]] = true
			roots = append(roots, Entry{Name: segments[0], Path: segments[0], IsDir: true})
		}

		// Register each intermediate directory once, then the file leaf.
		for i := 1; i < len(segments); i++ {
			parent := strings.Join(segments[:i], "/")
			current := strings.Join(segments[:i+1], "/")
			if i == len(segments)-1 {
				fsys.children[parent] = append(fsys.children[parent], Entry{
					Name: segments[i],
					Path: current,
				})
				continue
			}
			if !seenDirs[current] {
				seenDirs[current] = true
				fsys.children[parent] = append(fsys.children[parent], Entry{
					Name:  segments[i],
					Path:  current,
					IsDir: true,
				})
			}
		}
	}

	return roots, fsys
}

func (t *TreeFS) List(_ context.Context, dir Entry) ([]Entry, error) {
	return t.children[dir.Path], nil
}

// internal/ingest/ingest.go

// Package ingest turns a dropped set of files and directories into a flat
// list of upload candidates. Directory entries are walked recursively and
// filtered to image files; plain files arriving outside a directory are
// accepted as-is, since the picker already restricted them.
package ingest

import (
	"context"
	"fmt"
	"strings"
)

// Entry is one node handed over by the client's drop payload.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// FS resolves the children of a directory entry. Implementations wrap
// whatever the transport provides (a multipart form with relative paths, a
// staging area on disk, an in-memory fake in tests).
type FS interface {
	List(ctx context.Context, dir Entry) ([]Entry, error)
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

// IsImageFile reports whether the file name carries one of the accepted
// image extensions, case-insensitively.
func IsImageFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// CollectImages expands the dropped entries into upload candidates.
// Directories are traversed depth-first; only image files inside them are
// kept. Top-level files are filtered the same way, matching the drop
// handler's behavior in the console.
func CollectImages(ctx context.Context, fsys FS, dropped []Entry) ([]Entry, error) {
	var files []Entry
	for _, entry := range dropped {
		if entry.IsDir {
			if err := walk(ctx, fsys, entry, &files); err != nil {
				return nil, err
			}
			continue
		}
		if IsImageFile(entry.Name) {
			files = append(files, entry)
		}
	}
	return files, nil
}

func walk(ctx context.Context, fsys FS, dir Entry, files *[]Entry) error {
	entries, err := fsys.List(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir.Path, err)
	}

	for _, entry := range entries {
		if entry.IsDir {
			if err := walk(ctx, fsys, entry, files); err != nil {
				return err
			}
			continue
		}
		if IsImageFile(entry.Name) {
			*files = append(*files, entry)
		}
	}
	return nil
}

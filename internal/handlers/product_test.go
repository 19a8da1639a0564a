// internal/handlers/product_test.go
package handlers

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headersFor(names ...string) []*multipart.FileHeader {
	headers := make([]*multipart.FileHeader, len(names))
	for i, name := range names {
		headers[i] = &multipart.FileHeader{Filename: name}
	}
	return headers
}

func TestSelectUploadableFlatBatch(t *testing.T) {
	headers := headersFor("front.jpg", "notes.txt", "side.png")

	keep, skipped := selectUploadable(headers, nil)
	require.Len(t, keep, 2)
	assert.Equal(t, "front.jpg", keep[0].Filename)
	assert.Equal(t, "side.png", keep[1].Filename)
	assert.Equal(t, []string{"notes.txt"}, skipped)
}

func TestSelectUploadableDirectoryDrop(t *testing.T) {
	headers := headersFor("front.jpg", "readme.txt", "beach.png", "notes.md", "closeup.webp")
	paths := []string{
		"lookbook/front.jpg",
		"lookbook/readme.txt",
		"lookbook/summer/beach.png",
		"lookbook/summer/notes.md",
		"lookbook/summer/detail/closeup.webp",
	}

	keep, skipped := selectUploadable(headers, paths)
	require.Len(t, keep, 3, "three of the five dropped files are images")
	assert.Len(t, skipped, 2)

	kept := make(map[string]bool)
	for _, h := range keep {
		kept[h.Filename] = true
	}
	assert.True(t, kept["front.jpg"])
	assert.True(t, kept["beach.png"])
	assert.True(t, kept["closeup.webp"])
}

func TestSelectUploadableMismatchedPathsFallsBackToNames(t *testing.T) {
	headers := headersFor("a.jpg", "b.txt")

	// One path for two files: treat the batch as flat.
	keep, skipped := selectUploadable(headers, []string{"folder/a.jpg"})
	require.Len(t, keep, 1)
	assert.Equal(t, "a.jpg", keep[0].Filename)
	assert.Equal(t, []string{"b.txt"}, skipped)
}

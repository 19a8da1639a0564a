// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Running Shoes", "running-shoes"},
		{"New Balance & Co.", "new-balance-co"},
		{"  padded  ", "padded"},
		{"ALLCAPS", "allcaps"},
		{"émoji✨name", "moji-name"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

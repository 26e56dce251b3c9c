package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"upper case extension", "photo.JPG", "jpg"},
		{"no dot", "README", ""},
		{"trailing dot", "archive.", ""},
		{"multiple dots", "backup.tar.GZ", "gz"},
		{"dot file", ".env", "env"},
		{"empty", "", ""},
		{"dot only", ".", ""},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FileExtension(tt.filename))
		})
	}
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"name": "Go Fundamentals", "price": 500},
		{"name": "Advanced Go", "price": 1200}
	]`)

	cat, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Len())

	price, ok := cat.Price("Go Fundamentals")
	assert.True(t, ok)
	assert.Equal(t, int64(500), price)

	_, ok = cat.Price("Nonexistent Course")
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestLoadRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed json",
			content: `{"name": "not an array"`,
		},
		{
			name:    "empty catalog",
			content: `[]`,
		},
		{
			name:    "zero price",
			content: `[{"name": "Free Course", "price": 0}]`,
		},
		{
			name:    "negative price",
			content: `[{"name": "Weird Course", "price": -5}]`,
		},
		{
			name:    "empty name",
			content: `[{"name": "", "price": 100}]`,
		},
		{
			name:    "duplicate name",
			content: `[{"name": "Go", "price": 100}, {"name": "Go", "price": 200}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalogFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

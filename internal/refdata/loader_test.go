package refdata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempRefData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "refdata.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Load_Success(t *testing.T) {
	path := writeTempRefData(t, `{
		"locations": [
			{"id": "loc-1", "name": "Somewhere", "region": "Auckland Central", "island": "North", "active": true},
			{"id": "loc-2", "name": "Elsewhere", "region": "Wellington", "island": "North", "active": false}
		],
		"category_styles": {
			"Cleaning": {"icon": "sparkle", "color": "emerald", "gradient": "from-emerald-400 to-emerald-600"}
		}
	}`)

	loader := NewFileLoader(zerolog.Nop())
	set, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, set.Locations, 2)
	assert.Equal(t, "loc-1", set.Locations[0].ID)
	assert.Len(t, set.CategoryStyles, 1)
}

func TestFileLoader_Load_MissingFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(context.Background(), "/nonexistent/refdata.json")
	assert.Error(t, err)
}

func TestFileLoader_Load_InvalidPayloads(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json",
			content: `this is not json`,
		},
		{
			name:    "no locations",
			content: `{"locations": []}`,
		},
		{
			name:    "missing id",
			content: `{"locations": [{"name": "Nameless", "region": "Auckland"}]}`,
		},
		{
			name:    "missing name",
			content: `{"locations": [{"id": "loc-1", "region": "Auckland"}]}`,
		},
		{
			name: "duplicate ids",
			content: `{"locations": [
				{"id": "loc-1", "name": "One", "region": "Auckland"},
				{"id": "loc-1", "name": "Two", "region": "Auckland"}
			]}`,
		},
	}

	loader := NewFileLoader(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempRefData(t, tt.content)
			_, err := loader.Load(context.Background(), path)
			assert.Error(t, err)
		})
	}
}

// A file that overrides locations alone still gets the built-in style table.
func TestFileLoader_Load_StylesFallBackToBuiltin(t *testing.T) {
	path := writeTempRefData(t, `{
		"locations": [
			{"id": "loc-1", "name": "Somewhere", "region": "Auckland Central", "active": true}
		]
	}`)

	loader := NewFileLoader(zerolog.Nop())
	set, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, builtinStyles(), set.CategoryStyles)
}

package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticStore_Envelope(t *testing.T) {
	doc, err := NewStaticStore("testdata/portfolio.json").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.AuthorName())
	assert.Len(t, doc.Categories, 4)
}

func TestStaticStore_BareDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"author": {"_id": "a", "name": "Jane Doe"}, "projects": [], "experiences": []}`), 0o644))

	doc, err := NewStaticStore(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.AuthorName())
	assert.Empty(t, doc.Projects)
}

func TestStaticStore_MissingFile(t *testing.T) {
	_, err := NewStaticStore(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsFetchFailure(err))
}

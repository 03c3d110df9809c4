package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/WhiteCrosstheRiver/manualgen"
	"github.com/WhiteCrosstheRiver/manualgen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestCollector_Documents(t *testing.T) {
	t.Parallel()

	t.Run("returns documents sorted by filename, excluding the overview", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "b-config.md", "# Configuration\n")
		writeFile(t, dir, "a-usage.md", "# Usage\nRun it.")
		writeFile(t, dir, "README.md", "# Overview\nHello")
		writeFile(t, dir, "notes.txt", "not markdown")

		c := fs.NewCollector(dir, "README.md")

		docs, err := c.Documents(context.Background())

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "a-usage.md", docs[0].Filename)
		assert.Equal(t, "Usage", docs[0].Title)
		assert.Equal(t, 0, docs[0].Position)
		assert.Equal(t, "b-config.md", docs[1].Filename)
		assert.Equal(t, "Configuration", docs[1].Title)
		assert.Equal(t, 1, docs[1].Position)
		assert.NotEmpty(t, docs[0].ContentHash)
	})

	t.Run("returns ENOTFOUND for a missing directory", func(t *testing.T) {
		t.Parallel()

		c := fs.NewCollector(filepath.Join(t.TempDir(), "nope"), "README.md")

		_, err := c.Documents(context.Background())

		assert.Equal(t, manualgen.ENOTFOUND, manualgen.ErrorCode(err))
	})

	t.Run("returns empty slice for a directory with no markdown", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "data.json", "{}")

		c := fs.NewCollector(dir, "README.md")

		docs, err := c.Documents(context.Background())

		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.md", "# A")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := fs.NewCollector(dir, "README.md")

		_, err := c.Documents(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCollector_Overview(t *testing.T) {
	t.Parallel()

	t.Run("returns the parsed overview document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "README.md", "# Overview\nHello")

		c := fs.NewCollector(dir, "README.md")

		doc, err := c.Overview(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Overview", doc.Title)
		assert.Equal(t, "README.md", doc.Filename)
	})

	t.Run("returns ENOTFOUND when the overview file is absent", func(t *testing.T) {
		t.Parallel()

		c := fs.NewCollector(t.TempDir(), "README.md")

		_, err := c.Overview(context.Background())

		assert.Equal(t, manualgen.ENOTFOUND, manualgen.ErrorCode(err))
	})
}

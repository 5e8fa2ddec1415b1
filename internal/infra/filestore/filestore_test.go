package filestore

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	store := New(fs, "media")

	ref, err := store.Save(ctx, "Poster.PNG", strings.NewReader("content"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "media/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	ok, err := store.Exists(ref)
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := afero.ReadFile(fs, "/"+strings.TrimPrefix(ref, "media/"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	require.NoError(t, store.Remove(ctx, ref))
	ok, err = store.Exists(ref)
	require.NoError(t, err)
	assert.False(t, ok)

	// second removal is a no-op
	assert.NoError(t, store.Remove(ctx, ref))
}

func TestRemoveRejectsForeignReferences(t *testing.T) {
	store := New(afero.NewMemMapFs(), "media")

	for _, ref := range []string{"", "media/", "other/file.png", "../etc/passwd", "media/../../etc/passwd"} {
		err := store.Remove(context.Background(), ref)
		assert.ErrorIs(t, err, ErrInvalidReference, ref)
	}
}

func TestFileSystemServesStoredFiles(t *testing.T) {
	store := New(afero.NewMemMapFs(), "media")
	ref, err := store.Save(context.Background(), "a.jpg", strings.NewReader("jpeg"))
	require.NoError(t, err)

	f, err := store.FileSystem().Open("/" + strings.TrimPrefix(ref, "media/"))
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
}

func TestSaveHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(afero.NewMemMapFs(), "media").Save(ctx, "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

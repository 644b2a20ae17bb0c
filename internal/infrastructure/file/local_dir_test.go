package file_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDirRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := file.NewLocalDir(t.TempDir())

	w, err := dir.Create(ctx, "nested/data/auth_user.csv")
	require.NoError(t, err)
	_, err = io.WriteString(w, "id,username\n1,user_1\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := dir.Open(ctx, "nested/data/auth_user.csv")
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "id,username\n1,user_1\n", string(data))
}

func TestLocalDirMissingFile(t *testing.T) {
	t.Parallel()

	dir := file.NewLocalDir(t.TempDir())
	_, err := dir.Open(context.Background(), "missing.csv")
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestLocalDirExists(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "photos", "2021"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "photos", "2021", "logo_1.png"), []byte("png"), 0o644))

	dir := file.NewLocalDir(base)
	ctx := context.Background()

	ok, err := dir.Exists(ctx, "photos/2021/logo_1.png")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dir.Exists(ctx, "photos/2021/logo_2.png")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dir.Exists(ctx, "photos/2021")
	require.NoError(t, err)
	assert.False(t, ok, "directories are not media files")
}

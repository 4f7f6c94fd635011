package image

import (
	"archive/tar"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestTar builds a minimal tarball containing a single small file,
// used as import fixture input. Production import extraction goes through
// the external tar binary (pkg/image.extractTar); this helper only needs to
// produce valid tar bytes for that binary to consume.
func writeTestTar(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	tw := tar.NewWriter(f)
	defer tw.Close()

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: "hello.txt",
		Mode: 0644,
		Size: int64(len(content)),
	}))
	_, err = tw.Write(content)
	require.NoError(t, err)

	return path
}

func TestImportListLoadDeleteRoundTrip(t *testing.T) {
	if _, err := os.Stat("/bin/tar"); err != nil {
		if _, err := os.Stat("/usr/bin/tar"); err != nil {
			t.Skip("tar binary not available")
		}
	}

	root := t.TempDir()
	store := NewStoreAt(root)

	tarDir := t.TempDir()
	content := []byte("hello world")
	tarPath := writeTestTar(t, tarDir, "busybox.tar", content)

	rec, err := store.Import(tarPath, "busybox", "")
	require.NoError(t, err)
	assert.Equal(t, "latest", rec.Tag)
	assert.Equal(t, int64(len(content)), rec.Size)
	assert.Len(t, rec.ID, 12)

	loaded, err := store.Load("busybox", "")
	require.NoError(t, err)
	assert.Equal(t, rec, loaded)

	records, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "busybox", records[0].Name)

	rootfs := store.RootfsPath("busybox", "latest")
	data, err := os.ReadFile(filepath.Join(rootfs, "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, content, data)

	require.NoError(t, store.Delete("busybox", "latest"))
	_, err = store.Load("busybox", "")
	require.Error(t, err)
}

func TestListAllEmptyRootReturnsNil(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "does-not-exist"))
	records, err := store.ListAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

package archive

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTarball_RoundTrip(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "id_rsa"), []byte("private"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "id_rsa.pub"), []byte("public"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nested", "config"), []byte("Host x"), 0644))

	var buf bytes.Buffer
	require.NoError(t, Pack(src, &buf))

	dst := t.TempDir()
	require.NoError(t, Unpack(&buf, dst))

	data, err := os.ReadFile(filepath.Join(dst, "id_rsa"))
	require.NoError(t, err)
	assert.Equal(t, []byte("private"), data)

	info, err := os.Stat(filepath.Join(dst, "id_rsa"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err = os.ReadFile(filepath.Join(dst, "nested", "config"))
	require.NoError(t, err)
	assert.Equal(t, []byte("Host x"), data)
}

func TestTarball_SkipsNonRegularFiles(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "real"), []byte("x"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(src, "real"), filepath.Join(src, "link")))

	var buf bytes.Buffer
	require.NoError(t, Pack(src, &buf))

	dst := t.TempDir()
	require.NoError(t, Unpack(&buf, dst))

	assert.FileExists(t, filepath.Join(dst, "real"))
	_, err := os.Lstat(filepath.Join(dst, "link"))
	assert.True(t, os.IsNotExist(err))
}

func TestTarball_DotPrefixedNamesRoundTrip(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "..rc"), []byte("dotdot name"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".hidden"), []byte("hidden"), 0600))

	var buf bytes.Buffer
	require.NoError(t, Pack(src, &buf))

	dst := t.TempDir()
	require.NoError(t, Unpack(&buf, dst))

	data, err := os.ReadFile(filepath.Join(dst, "..rc"))
	require.NoError(t, err)
	assert.Equal(t, []byte("dotdot name"), data)
	assert.FileExists(t, filepath.Join(dst, ".hidden"))
}

func TestTarball_RejectsEscapingEntries(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: "../evil",
		Mode: 0644,
		Size: 4,
	}))
	_, err := tw.Write([]byte("oops"))
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	err = Unpack(&buf, t.TempDir())
	assert.Error(t, err)
}

func TestTarball_GarbageInput(t *testing.T) {
	err := Unpack(bytes.NewReader([]byte("not a gzip stream")), t.TempDir())
	assert.Error(t, err)
}

package testsuite

import (
	"bytes"
	"io"
	"maps"
	"path"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/valensas/xfer"
)

const testContent = "some text"

// ConformanceOptions allows skipping behaviors some servers don't share.
type ConformanceOptions struct {
	// SkipMissingDirectoryListing skips the check that listing a missing directory fails with xfer.ErrNotFound.
	// Some FTP servers answer with an empty listing instead.
	SkipMissingDirectoryListing bool
}

// RunConformanceTests runs the conformance suite against client, which must be connected. Everything is written
// below a new directory inside basePath.
func RunConformanceTests(t *testing.T, client xfer.Client, basePath string, opts ConformanceOptions) {
	t.Helper()
	require.True(t, client.IsConnected(), "client must be connected")

	base := path.Join(basePath, "xfer_conformance_"+strconv.FormatInt(time.Now().UnixNano(), 36))
	require.NoError(t, client.MakeDirectory(base), "creating test directory")

	var created []string
	defer func() {
		for _, name := range created {
			_, _ = client.DeleteFile(name)
		}
	}()

	store := func(t *testing.T, name, content string) string {
		t.Helper()
		p := path.Join(base, name)
		ok, err := client.StoreFile(p, strings.NewReader(content))
		require.NoError(t, err, "storing %s", p)
		require.True(t, ok)
		created = append(created, p)
		return p
	}

	t.Run("StoreFile, ListFilesInfo reports size", func(t *testing.T) {
		store(t, "sized.txt", testContent)

		files, err := client.ListFilesInfo(base)
		require.NoError(t, err)
		require.Contains(t, files, "sized.txt")
		require.Equal(t, int64(len(testContent)), files["sized.txt"])
	})

	t.Run("StoreFile, RetrieveFileStream round trip", func(t *testing.T) {
		p := store(t, "roundtrip.txt", testContent)
		require.Equal(t, testContent, retrieve(t, client, p))
	})

	t.Run("StoreFile replaces existing file", func(t *testing.T) {
		p := store(t, "replaced.txt", testContent)
		store(t, "replaced.txt", "abc")
		require.Equal(t, "abc", retrieve(t, client, p))
	})

	t.Run("StoreFile, empty file", func(t *testing.T) {
		store(t, "empty.txt", "")

		files, err := client.ListFilesInfo(base)
		require.NoError(t, err)
		require.Contains(t, files, "empty.txt")
		require.Zero(t, files["empty.txt"])
	})

	t.Run("MakeDirectory nested, idempotent", func(t *testing.T) {
		nested := path.Join(base, "a", "b", "c")
		require.NoError(t, client.MakeDirectory(nested))
		require.NoError(t, client.MakeDirectory(nested), "second call should be a no-op")

		dirs, err := client.ListDirectoryInfo(path.Join(base, "a"))
		require.NoError(t, err)
		require.Equal(t, []string{"b"}, keys(dirs))

		infos, err := client.ListDirectories(path.Join(base, "a", "b"))
		require.NoError(t, err)
		require.Len(t, infos, 1)
		require.Equal(t, "c", infos[0].Name)
		require.True(t, infos[0].IsDir)
	})

	t.Run("Listings separate files and directories", func(t *testing.T) {
		dir := path.Join(base, "mixed")
		require.NoError(t, client.MakeDirectory(path.Join(dir, "sub2")))
		require.NoError(t, client.MakeDirectory(path.Join(dir, "sub1")))
		store(t, "mixed/file.txt", testContent)

		files, err := client.ListFilesInfo(dir)
		require.NoError(t, err)
		require.Equal(t, []string{"file.txt"}, keys(files))

		dirs, err := client.ListDirectoryInfo(dir)
		require.NoError(t, err)
		require.Equal(t, []string{"sub1", "sub2"}, keys(dirs))

		infos, err := client.ListDirectories(dir)
		require.NoError(t, err)
		require.Len(t, infos, 2)
		require.Equal(t, "sub1", infos[0].Name, "directories are sorted by name")
		require.Equal(t, "sub2", infos[1].Name)
	})

	t.Run("MakeDirectory over a file", func(t *testing.T) {
		store(t, "collision", testContent)

		err := client.MakeDirectory(path.Join(base, "collision", "below"))
		require.ErrorIs(t, err, xfer.ErrConfiguration)
	})

	t.Run("DeleteFile, then missing", func(t *testing.T) {
		p := store(t, "deleted.txt", testContent)

		ok, err := client.DeleteFile(p)
		require.NoError(t, err)
		require.True(t, ok)

		files, err := client.ListFilesInfo(base)
		require.NoError(t, err)
		require.NotContains(t, files, "deleted.txt")

		ok, err = client.DeleteFile(p)
		require.ErrorIs(t, err, xfer.ErrNotFound)
		require.False(t, ok)
	})

	t.Run("RetrieveFileStream, missing file", func(t *testing.T) {
		r, err := client.RetrieveFileStream(path.Join(base, "missing.txt"))
		require.ErrorIs(t, err, xfer.ErrNotFound)
		require.Nil(t, r)
	})

	if !opts.SkipMissingDirectoryListing {
		t.Run("ListFilesInfo, missing directory", func(t *testing.T) {
			_, err := client.ListFilesInfo(path.Join(base, "missing"))
			require.ErrorIs(t, err, xfer.ErrNotFound)
		})
	}

	require.True(t, client.IsConnected(), "client should still be connected")
}

func retrieve(t *testing.T, client xfer.Client, p string) string {
	t.Helper()
	r, err := client.RetrieveFileStream(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return buf.String()
}

func keys(m map[string]int64) []string {
	return slices.Sorted(maps.Keys(m))
}

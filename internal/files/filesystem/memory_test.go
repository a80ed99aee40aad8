package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_Walk(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("index.html", `<b _="on click toggle .x">`)
	mfs.AddFile("templates/partials/nav.html", "<nav></nav>")

	dir, err := mfs.Open("/test/project")
	require.NoError(t, err)

	var files []string
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if !file.IsDir() {
			files = append(files, file.Path())
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/test/project/index.html", "/test/project/templates/partials/nav.html"}, files)
}

func TestMemoryFileSystem_WalkSubdirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("a/one.html", "1")
	mfs.AddFile("ab/two.html", "2")

	dir, err := mfs.Open("a")
	require.NoError(t, err)

	var files []string
	require.NoError(t, dir.Walk(func(file File, err error) error {
		if !file.IsDir() {
			files = append(files, file.Path())
		}
		return nil
	}))
	assert.Equal(t, []string{"/p/a/one.html"}, files, "sibling with shared prefix must not be walked")
}

func TestMemoryFileSystem_WalkStopsOnError(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("a.html", "1")
	mfs.AddFile("b.html", "2")

	dir, err := mfs.Open("/p")
	require.NoError(t, err)

	stop := errors.New("stop")
	visited := 0
	err = dir.Walk(func(file File, err error) error {
		visited++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, visited)
}

func TestMemoryFileSystem_WalkRecoversPanic(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("a.html", "1")

	dir, err := mfs.Open("/p")
	require.NoError(t, err)

	err = dir.Walk(func(file File, err error) error {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.html", "<div></div>")

	content, err := mfs.ReadFile("/test/project/root.html")
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", string(content))

	content, err = mfs.ReadFile("root.html")
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", string(content))
}

func TestMemoryFileSystem_NotExist(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	_, err := mfs.Open("/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.ReadFile("missing.html")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.Stat("missing.html")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_UnreadableFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	denied := &fs.PathError{Op: "open", Path: "/p/secret.html", Err: fs.ErrPermission}
	mfs.AddUnreadableFile("secret.html", denied)

	_, err := mfs.ReadFile("secret.html")
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.html", "x")
	mfs.AddDir("empty")

	info, err := mfs.Stat("/test/project/root.html")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "root.html", info.Name())
	assert.Equal(t, int64(1), info.Size())

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = mfs.Stat("empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryFileSystem_OpenFileIsError(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("a.html", "x")

	_, err := mfs.Open("a.html")
	assert.Error(t, err)
}

package static

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// deniedFs fails every open of one path with a permission error.
type deniedFs struct {
	afero.Fs
	denied string
}

func (d deniedFs) Open(name string) (afero.File, error) {
	if name == d.denied {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Open(name)
}

func (d deniedFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if name == d.denied {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.OpenFile(name, flag, perm)
}

func setupService(t *testing.T) (*Service, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/js/lib", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/manifest.json", []byte(`{"a":1}`), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/js/popup.js", []byte("console.log(1)"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/js/Background.js", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/secret.txt", []byte("hidden"), 0o644))
	return NewService(deniedFs{Fs: fsys, denied: "/secret.txt"}, zap.NewNop()), fsys
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"manifest.json", "/manifest.json"},
		{"/js/../manifest.json", "/manifest.json"},
		{"/../../etc/passwd", "/etc/passwd"},
		{"/js//popup.js", "/js/popup.js"},
		{"/js/", "/js"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanPath(tt.in))
		})
	}
}

func TestService_Resolve(t *testing.T) {
	svc, _ := setupService(t)

	t.Run("File", func(t *testing.T) {
		res, err := svc.Resolve("/manifest.json")
		require.NoError(t, err)
		assert.Equal(t, "/manifest.json", res.Path)
		assert.False(t, res.IsDir())
		assert.Equal(t, int64(7), res.Info.Size())
	})

	t.Run("Directory", func(t *testing.T) {
		res, err := svc.Resolve("/js/")
		require.NoError(t, err)
		assert.Equal(t, "/js", res.Path)
		assert.True(t, res.IsDir())
	})

	t.Run("Root", func(t *testing.T) {
		res, err := svc.Resolve("/")
		require.NoError(t, err)
		assert.True(t, res.IsDir())
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := svc.Resolve("/missing.js")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Traversal", func(t *testing.T) {
		_, err := svc.Resolve("/../manifest.json")
		assert.NoError(t, err, "dot segments above the root collapse onto the root")
	})
}

func TestService_ReadFile(t *testing.T) {
	svc, _ := setupService(t)

	data, err := svc.ReadFile("/manifest.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	_, err = svc.ReadFile("/missing.js")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ReadFile("/secret.txt")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Index(t *testing.T) {
	svc, fsys := setupService(t)

	_, ok := svc.Index("/")
	assert.False(t, ok)

	require.NoError(t, afero.WriteFile(fsys, "/js/index.htm", []byte("<p>js</p>"), 0o644))
	res, ok := svc.Index("/js")
	require.True(t, ok)
	assert.Equal(t, "/js/index.htm", res.Path)

	require.NoError(t, afero.WriteFile(fsys, "/js/index.html", []byte("<p>js</p>"), 0o644))
	res, ok = svc.Index("/js")
	require.True(t, ok)
	assert.Equal(t, "/js/index.html", res.Path, "index.html wins over index.htm")
}

func TestService_List(t *testing.T) {
	svc, _ := setupService(t)

	entries, err := svc.List("/js")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"Background.js", "lib", "popup.js"}, names)

	_, err = svc.List("/nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ConfiguredIndex(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/home.html", []byte("home"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/index.html", []byte("index"), 0o644))

	svc := NewService(fsys, zap.NewNop(), "home.html")
	res, ok := svc.Index("/")
	require.True(t, ok)
	assert.Equal(t, "/home.html", res.Path, "configured name is tried first")

	require.NoError(t, fsys.Remove("/home.html"))
	res, ok = svc.Index("/")
	require.True(t, ok)
	assert.Equal(t, "/index.html", res.Path, "defaults still apply")
}

func TestIndexNames(t *testing.T) {
	assert.Equal(t, []string{"home.html", "index.html", "index.htm"}, indexNames([]string{"home.html"}))
	assert.Equal(t, []string{"index.html", "index.htm"}, indexNames([]string{"/index.html", ""}))
	assert.Equal(t, DefaultIndexFiles, indexNames(nil))
}

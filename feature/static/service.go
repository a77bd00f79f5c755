package static

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	// ErrNotFound means the requested path does not exist under the root.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the entry exists but cannot be read.
	ErrForbidden = errors.New("forbidden")
)

// DefaultIndexFiles are looked up, in order, when a directory is requested.
var DefaultIndexFiles = []string{"index.html", "index.htm"}

// Resource is a filesystem entry resolved from a request path.
type Resource struct {
	// Path is the cleaned, slash-separated path relative to the root ("/" for the root itself).
	Path string
	// Info describes the entry.
	Info os.FileInfo
}

// IsDir reports whether the resource is a directory.
func (r Resource) IsDir() bool {
	return r.Info.IsDir()
}

// Service resolves request paths against a root filesystem.
type Service struct {
	fs         afero.Fs
	indexFiles []string
	logger     *zap.Logger
}

// NewService creates a service reading from fsys. fsys is treated as the
// served root: use afero.NewBasePathFs to confine it to a directory.
// indexFiles are looked up before DefaultIndexFiles when a directory is requested.
func NewService(fsys afero.Fs, logger *zap.Logger, indexFiles ...string) *Service {
	return &Service{
		fs:         fsys,
		indexFiles: indexNames(indexFiles),
		logger:     logger,
	}
}

func indexNames(extra []string) []string {
	names := make([]string, 0, len(extra)+len(DefaultIndexFiles))
	seen := make(map[string]bool)
	add := func(name string) {
		name = strings.Trim(path.Clean("/"+name), "/")
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, name := range extra {
		add(name)
	}
	for _, name := range DefaultIndexFiles {
		add(name)
	}
	return names
}

// CleanPath normalizes a request path so it can never climb above the root.
func CleanPath(p string) string {
	return path.Clean("/" + p)
}

// Resolve looks up the entry for a request path.
func (s *Service) Resolve(requestPath string) (Resource, error) {
	p := CleanPath(requestPath)
	info, err := s.fs.Stat(p)
	if err != nil {
		return Resource{}, classify(p, err)
	}
	return Resource{Path: p, Info: info}, nil
}

// ReadFile returns the full contents of the regular file at p.
func (s *Service) ReadFile(p string) ([]byte, error) {
	p = CleanPath(p)
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return nil, classify(p, err)
	}
	return data, nil
}

// Index returns the index file inside dir, if one exists.
func (s *Service) Index(dir string) (Resource, bool) {
	for _, name := range s.indexFiles {
		res, err := s.Resolve(path.Join(dir, name))
		if err == nil && !res.IsDir() {
			return res, true
		}
	}
	return Resource{}, false
}

// List returns the entries of dir sorted case-insensitively by name.
func (s *Service) List(dir string) ([]os.FileInfo, error) {
	dir = CleanPath(dir)
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, classify(dir, err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
	return entries, nil
}

func classify(p string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%s: %w", p, ErrNotFound)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s: %w", p, ErrForbidden)
	default:
		return fmt.Errorf("%s: %w", p, err)
	}
}

package landing

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

//go:embed index.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("index").Parse(pageSource))

// DefaultFiles are the extension files linked from the landing page.
var DefaultFiles = []string{
	"manifest.json",
	"newtab.html",
	"styles.css",
	"script.js",
	"background.js",
	"popup.html",
	"popup.js",
}

// Page is the data rendered into the landing page.
type Page struct {
	Title string
	Port  int
	Files []string
}

// Render returns the landing page HTML.
func Render(page Page) ([]byte, error) {
	if page.Title == "" {
		page.Title = "Chrome Extension Development Server"
	}
	if page.Files == nil {
		page.Files = DefaultFiles
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("failed to render landing page: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure writes the landing page to name on fsys unless a file with that name
// already exists. It reports whether it created the file. Existing files are
// never modified.
func Ensure(fsys afero.Fs, name string, page Page) (bool, error) {
	if _, err := fsys.Stat(name); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to check %s: %w", name, err)
	}

	content, err := Render(page)
	if err != nil {
		return false, err
	}

	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create %s: %w", name, err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close %s: %w", name, err)
	}
	return true, nil
}

package static

import (
	"bytes"
	"html/template"
	"net/url"
	"os"
)

var listingTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Directory listing for {{.Path}}</title>
</head>
<body>
<h1>Directory listing for {{.Path}}</h1>
<hr>
<ul>
{{- range .Entries}}
<li><a href="{{.Href}}">{{.Name}}</a></li>
{{- end}}
</ul>
<hr>
</body>
</html>
`))

type listingEntry struct {
	Name string
	Href template.URL
}

type listingPage struct {
	Path    string
	Entries []listingEntry
}

func renderListing(dir string, entries []os.FileInfo) ([]byte, error) {
	page := listingPage{Path: dir, Entries: make([]listingEntry, 0, len(entries))}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		href := (&url.URL{Path: name}).EscapedPath()
		page.Entries = append(page.Entries, listingEntry{
			Name: name,
			// Already escaped; the template must not escape it twice.
			Href: template.URL(href),
		})
	}

	var buf bytes.Buffer
	if err := listingTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

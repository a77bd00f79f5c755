// Package static serves a directory tree over HTTP.
//
// Request paths are cleaned against "/" and resolved on an afero.Fs that is
// expected to be confined to the served root (afero.NewBasePathFs), so no
// request can reach outside it.
//
// # Responses
//
//   - Regular file: 200 with the file bytes and a content type from its extension.
//   - Directory without trailing slash: 301 to the slashed path.
//   - Directory: its index.html (or index.htm) if present, otherwise an HTML listing.
//   - Missing entry: 404. Unreadable entry: 403.
//   - Methods other than GET, HEAD and POST: 405.
package static

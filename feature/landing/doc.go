// Package landing generates the placeholder index page of the served directory.
//
// Ensure is idempotent: it writes the page only when no file of that name
// exists and never touches an existing one.
package landing

// Package share implements read-only map sharing: a map owner opens a
// share link with an opaque code, and anyone holding the code can load
// the map snapshot until the link is closed or expires.
package share

// Package server holds configuration for the HTTP server: listen port,
// CORS allowlist for the browser client, and the request body cap.
package server

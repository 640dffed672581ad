// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application; this package only defines
// the settings it needs: listen port, API key, the page served at the root of
// /pages and the graceful shutdown bound.
package server

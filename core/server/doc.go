// Package server holds the HTTP server configuration.
//
// While the cmd package handles the server startup, this package defines the
// listen port, the API key guarding every route, and the request body limit
// that bounds library uploads sent to the merge endpoint.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to configure the Fiber app.
package server

// Package utils provides parsing helpers shared by the CLI and the HTTP
// handlers: record identifiers, thumbnail slot indices, comma-separated tag
// lists and loose boolean flags.
package utils

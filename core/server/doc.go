// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port and the API key. The cmd start command
// builds the Fiber application from it; core/config embeds it under "server".
package server

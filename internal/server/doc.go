// Package server runs the HTTP server of the blog application, including
// signal handling and graceful shutdown.
package server

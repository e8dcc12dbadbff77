// Package server runs the change-feed HTTP server and its background
// workers, and shuts both down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server

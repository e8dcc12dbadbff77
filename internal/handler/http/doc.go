// Package http implements the HTTP transport of the change-feed server.
//
// It wires chi routes for zone and record change feeds, account listing and
// the websocket stream of change signals. Request tracing, access logging
// and response compression are applied as middleware before requests reach
// the service layer.
package http

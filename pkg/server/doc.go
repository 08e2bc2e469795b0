// Package server provides the Satchel HTTP server.
//
// The server wires a gorilla/mux router, the session middleware and the
// storage interfaces together. Endpoint handlers live in the endpoints
// subpackage; storage interfaces and their GORM implementations live in
// the store subpackage.
package server

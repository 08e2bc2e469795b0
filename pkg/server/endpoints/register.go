package endpoints

import (
	"github.com/satchelhq/satchel/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterUserEndpoints(srv)
	RegisterInventoryEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterStatusEndpoints(srv)
	RegisterDocsEndpoint(srv)
}

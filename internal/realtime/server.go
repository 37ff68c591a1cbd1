package realtime

import (
	"net/http"

	"github.com/zishang520/socket.io/v2/socket"

	"pairchat/internal/common"
)

// NewServer builds the socket.io server with handshake auth: the client
// passes its JWT as a `token` query parameter and the verified identity id
// lands in the socket's data for the router. Unauthenticated handshakes are
// rejected before the connection event fires.
func NewServer() *socket.Server {
	server := socket.NewServer(nil, nil)

	server.Use(func(client *socket.Socket, next func(*socket.ExtendedError)) {
		token, ok := client.Conn().Request().Query().Get("token")
		if !ok || token == "" {
			next(socket.NewExtendedError("missing token", nil))
			return
		}

		claims, err := common.ValidToken(token)
		if err != nil {
			next(socket.NewExtendedError("invalid token", nil))
			return
		}

		client.SetData(claims.UserID)
		next(nil)
	})

	return server
}

// Handler exposes the socket.io endpoint as an http.Handler so it mounts on
// the same mux as the REST surface.
func Handler(server *socket.Server) http.Handler {
	return server.ServeHandler(socket.DefaultServerOptions())
}

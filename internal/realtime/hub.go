package realtime

import (
	"github.com/zishang520/socket.io/v2/socket"

	"pairchat/internal/common"
)

// Room naming: one personal room per identity and one room per conversation.
func UserRoom(userID string) socket.Room {
	return socket.Room("user:" + userID)
}

func ConversationRoom(conversationID string) socket.Room {
	return socket.Room("conv:" + conversationID)
}

// Hub bridges durable writes to the push channel. Emits are fire-and-forget:
// a room with no live subscribers drops the event, and clients re-sync on
// reconnect from the stores.
type Hub struct {
	server *socket.Server
}

func NewHub(server *socket.Server) *Hub {
	return &Hub{server: server}
}

func (h *Hub) ToUser(userID string, event common.Event) {
	h.server.To(UserRoom(userID)).Emit(event.EventName(), event)
}

func (h *Hub) ToConversation(conversationID string, event common.Event) {
	h.server.To(ConversationRoom(conversationID)).Emit(event.EventName(), event)
}

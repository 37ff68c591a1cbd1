package realtime

import (
	"context"
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"pairchat/internal/dbmysql"
)

// ConversationDirectory is the slice of the conversation store the router
// needs to subscribe connections to the right rooms.
type ConversationDirectory interface {
	ByID(ctx context.Context, id string) (*dbmysql.Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]*dbmysql.Conversation, error)
}

// MessageActions are the inbound socket actions that hit the message store.
type MessageActions interface {
	MarkRead(ctx context.Context, conversationID, actorID, upToMessageID string) error
	Typing(ctx context.Context, conversationID, actorID string, isTyping bool) error
}

// SessionTracker observes connection churn for presence.
type SessionTracker interface {
	Connected(ctx context.Context, userID, connID string)
	Disconnected(ctx context.Context, userID, connID string)
}

// Router wires inbound socket events to the stores. Durable mutations stay
// on the HTTP surface; the socket carries session lifecycle, room joins and
// the ephemeral actions (typing, mark_read).
type Router struct {
	server        *socket.Server
	conversations ConversationDirectory
	messages      MessageActions
	tracker       SessionTracker
}

func NewRouter(server *socket.Server, conversations ConversationDirectory, messages MessageActions, tracker SessionTracker) *Router {
	return &Router{
		server:        server,
		conversations: conversations,
		messages:      messages,
		tracker:       tracker,
	}
}

func (r *Router) Attach() {
	r.server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		userID, ok := client.Data().(string)
		if !ok || userID == "" {
			client.Disconnect(true)
			return
		}

		ctx := context.Background()
		connID := string(client.Id())

		// Personal room plus every conversation the identity is already in.
		// Conversations created after connect arrive via conversation:join.
		client.Join(UserRoom(userID))
		convs, err := r.conversations.ListByUser(ctx, userID)
		if err != nil {
			log.Printf("realtime: listing conversations for %s: %v", userID, err)
		}
		for _, conv := range convs {
			client.Join(ConversationRoom(conv.ID))
		}

		r.tracker.Connected(ctx, userID, connID)

		client.On("conversation:join", func(args ...interface{}) {
			payload := eventPayload(args)
			conversationID := stringField(payload, "conversationId")
			if conversationID == "" {
				return
			}

			conv, err := r.conversations.ByID(context.Background(), conversationID)
			if err != nil || !conv.HasMember(userID) {
				return
			}
			// Join is idempotent; re-joining an already-joined room is a no-op.
			client.Join(ConversationRoom(conversationID))
		})

		client.On("typing", func(args ...interface{}) {
			payload := eventPayload(args)
			conversationID := stringField(payload, "conversationId")
			if conversationID == "" {
				return
			}

			if err := r.messages.Typing(context.Background(), conversationID, userID, boolField(payload, "isTyping")); err != nil {
				log.Printf("realtime: typing relay from %s: %v", userID, err)
			}
		})

		client.On("mark_read", func(args ...interface{}) {
			payload := eventPayload(args)
			conversationID := stringField(payload, "conversationId")
			upToMessageID := stringField(payload, "upToMessageId")
			if conversationID == "" || upToMessageID == "" {
				return
			}

			if err := r.messages.MarkRead(context.Background(), conversationID, userID, upToMessageID); err != nil {
				log.Printf("realtime: mark_read from %s: %v", userID, err)
			}
		})

		client.On("disconnect", func(...interface{}) {
			r.tracker.Disconnected(context.Background(), userID, connID)
		})
	})
}

func eventPayload(args []interface{}) map[string]interface{} {
	if len(args) == 0 {
		return nil
	}
	payload, _ := args[0].(map[string]interface{})
	return payload
}

func stringField(payload map[string]interface{}, key string) string {
	val, _ := payload[key].(string)
	return val
}

func boolField(payload map[string]interface{}, key string) bool {
	val, _ := payload[key].(bool)
	return val
}

package common

// Publisher pushes an event to a set of live connections. Publishing is
// fire-and-forget: a room with no subscribers is a silent no-op, and a
// publish failure never affects the durable write that preceded it.
type Publisher interface {
	ToUser(userID string, event Event)
	ToConversation(conversationID string, event Event)
}

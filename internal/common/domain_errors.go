package common

// Domain errors — used by the relation, conversation and message services.
var (
	// Relationship graph
	ErrSelfRequest      = Validation("self_request", "cannot send a connection request to yourself")
	ErrAlreadyAccepted  = Conflict("already_accepted", "connection already accepted")
	ErrRequestPending   = Conflict("request_pending", "a connection request is already pending")
	ErrRelationNotFound = NotFound("connection_not_found", "connection not found")
	ErrNotRecipient     = Forbidden("not_recipient", "only the recipient may respond to a request")
	ErrAlreadyResponded = Conflict("already_responded", "request has already been responded to")
	ErrInvalidAction    = Validation("invalid_action", "action must be accept or reject")

	// Conversation store
	ErrSelfConversation     = Validation("self_conversation", "cannot open a conversation with yourself")
	ErrNotConnected         = Forbidden("not_connected", "an accepted connection is required")
	ErrConversationNotFound = NotFound("conversation_not_found", "conversation not found")
	ErrNotMember            = Forbidden("not_member", "actor is not a participant of this conversation")
	ErrBadCursor            = Validation("bad_cursor", "cursor does not reference a message in this conversation")

	// Message store & lifecycle
	ErrMessageNotFound   = NotFound("message_not_found", "message not found")
	ErrBodyLength        = Validation("body_length", "message body must be between 1 and the configured maximum length")
	ErrMissingFields     = Validation("fields_required", "required fields are missing")
	ErrNotSender         = Forbidden("not_sender", "only the sender may modify a message")
	ErrAlreadyDeleted    = Conflict("already_deleted", "message has been removed")
	ErrEditWindowExpired = WindowExpired("edit_window_expired", "the edit window for this message has expired")
	ErrUndoWindowExpired = WindowExpired("undo_window_expired", "the undo window for this message has expired")
)

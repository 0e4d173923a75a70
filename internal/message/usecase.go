package message

import "context"

type MessageUsecase interface {
	// Post persists the message first and only then fans it out to the
	// destination scope, so subscribers never observe an event for a
	// message that is not durably recorded.
	Post(ctx context.Context, cmd PostMessageCommand) (*MessageDTO, error)

	// List reads non-deleted history for a public room token or a private
	// room id, newest-first limited, returned oldest-first.
	List(ctx context.Context, q ListMessagesQuery) ([]*MessageDTO, error)

	// Delete soft-deletes a message owned by walletAddress and notifies the
	// message's scope. Both deletion modes set the same flag.
	Delete(ctx context.Context, messageID, walletAddress string, deleteForAll bool) error

	// Resend re-publishes the new_message event for an already-persisted
	// message to its scope (the send_message socket frame).
	Resend(ctx context.Context, messageID string) error
}

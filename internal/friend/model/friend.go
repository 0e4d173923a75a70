package models

import "time"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// FriendRequest rows are keyed by the ordered (sender, receiver) pair.
// pending → accepted|rejected is terminal for the row; a later request for
// the same pair revives the row back to pending with a fresh created_at,
// which is the fresh-insert semantics with a composite key.
type FriendRequest struct {
	SenderID   string `bun:",pk"`
	ReceiverID string `bun:",pk"`

	Status string `bun:",notnull,default:'pending'"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Friendship edges are directed rows; acceptance inserts both directions
// atomically so existence is queryable from either side.
type Friendship struct {
	UserID   string `bun:",pk"`
	FriendID string `bun:",pk"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

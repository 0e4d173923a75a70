package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeText  = "text"
	TypeImage = "image"
	TypeFile  = "file"
)

// Message always has a sender and exactly one destination context:
// a public room, a private room, or a legacy direct receiver.
// Soft-deleted rows stay in storage but are excluded from every read path.
type Message struct {
	ID      uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	Content string    `bun:",nullzero"`

	SenderID      string     `bun:",notnull"`
	ReceiverID    *string    `bun:",nullzero"`
	RoomID        *uuid.UUID `bun:",nullzero,type:uuid"`
	PrivateRoomID *uuid.UUID `bun:",nullzero,type:uuid"`

	Type     string  `bun:",notnull,default:'text'"`
	FileURL  *string `bun:",nullzero"`
	FileName *string `bun:",nullzero"`

	Timestamp time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	IsDeleted bool      `bun:",default:false"`
}

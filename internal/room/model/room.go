package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatRoom is a public fan-out scope. The name is unique and doubles as the
// human-facing room token; create-on-miss resolution relies on that
// uniqueness to collapse concurrent creates for the same name.
type ChatRoom struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Name        string `bun:",unique,notnull"`
	Description string `bun:",nullzero"`
	IsPrivate   bool   `bun:",default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// PrivateChatRoom is the dedicated scope for one accepted friendship pair.
// The pair is semantically unordered: membership checks must match either
// stored order. At most one room exists per pair: rooms are created only
// inside the accept transaction, which looks the pair up in both orders
// first, and accepts for one pair are serialized in the friend usecase.
type PrivateChatRoom struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	User1ID string `bun:",notnull"`
	User2ID string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Includes reports whether the given wallet address is one of the pair.
func (r *PrivateChatRoom) Includes(walletAddress string) bool {
	return r.User1ID == walletAddress || r.User2ID == walletAddress
}

// OtherParty returns the pair member that is not the given address.
func (r *PrivateChatRoom) OtherParty(walletAddress string) string {
	if r.User1ID == walletAddress {
		return r.User2ID
	}
	return r.User1ID
}

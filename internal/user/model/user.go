package models

import (
	"fmt"
	"time"
)

// User is keyed by wallet address. The address is the stable external
// identity and is immutable once created; profile fields can change freely.
type User struct {
	WalletAddress string `bun:",pk"`

	DisplayName string `bun:",notnull"`
	Avatar      string `bun:",notnull"`
	Bio         string `bun:",nullzero"`

	LastActive time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	CreatedAt  time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// DefaultDisplayName derives the placeholder name for a wallet address that
// was never given a profile: "User " + first 6 characters of the address.
func DefaultDisplayName(walletAddress string) string {
	short := walletAddress
	if len(short) > 6 {
		short = short[:6]
	}
	return "User " + short
}

// DefaultAvatar derives the generated avatar URL for a wallet address.
func DefaultAvatar(walletAddress string) string {
	return fmt.Sprintf(
		"https://api.dicebear.com/9.x/pixel-art/svg?seed=%s&hair=short01,short02,short03,short04,short05",
		walletAddress,
	)
}

// NewUser builds a user with derived defaults for any empty profile field.
func NewUser(walletAddress, displayName, avatar, bio string) *User {
	if displayName == "" {
		displayName = DefaultDisplayName(walletAddress)
	}
	if avatar == "" {
		avatar = DefaultAvatar(walletAddress)
	}
	return &User{
		WalletAddress: walletAddress,
		DisplayName:   displayName,
		Avatar:        avatar,
		Bio:           bio,
	}
}

package friend

import (
	"time"

	"github.com/F2fX4553/polychat/internal/message"
)

const (
	ActionAccept = "accept"
	ActionReject = "reject"

	DirectionReceived = "received"
	DirectionSent     = "sent"
)

type FriendDTO struct {
	WalletAddress string     `json:"walletAddress"`
	DisplayName   string     `json:"displayName"`
	Avatar        string     `json:"avatar"`
	Bio           string     `json:"bio"`
	LastActive    *time.Time `json:"lastActive"`
	PrivateRoomID string     `json:"privateRoomId,omitempty"`
}

// RequestDTO is one side of a pending or resolved request. Received
// listings fill the sender fields, sent listings the receiver fields.
type RequestDTO struct {
	SenderID       string     `json:"senderId,omitempty"`
	SenderName     string     `json:"senderName,omitempty"`
	SenderAvatar   string     `json:"senderAvatar,omitempty"`
	ReceiverID     string     `json:"receiverId,omitempty"`
	ReceiverName   string     `json:"receiverName,omitempty"`
	ReceiverAvatar string     `json:"receiverAvatar,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      *time.Time `json:"createdAt"`
}

// AcceptedEventPayload is pushed to the original sender's notification
// room when their request is accepted.
type AcceptedEventPayload struct {
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName,omitempty"`
	SenderAvatar   string `json:"senderAvatar,omitempty"`
	ReceiverID     string `json:"receiverId"`
	ReceiverName   string `json:"receiverName,omitempty"`
	ReceiverAvatar string `json:"receiverAvatar,omitempty"`
	PrivateRoomID  string `json:"privateRoomId"`
}

type RejectedEventPayload struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

type PrivateChatDTO struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	DisplayName string              `json:"displayName"`
	Avatar      string              `json:"avatar"`
	LastActive  *time.Time          `json:"lastActive"`
	LastMessage *message.MessageDTO `json:"lastMessage"`
}

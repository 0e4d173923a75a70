package realtime

// Event is one outbound frame: {"event": <name>, "data": <payload>}.
type Event struct {
	Name string      `json:"event"`
	Data interface{} `json:"data"`
}

// Outbound event names.
const (
	EventJoined                = "joined"
	EventNewMessage            = "new_message"
	EventMessageDeleted        = "message_deleted"
	EventUserTyping            = "user_typing"
	EventUserConnected         = "user_connected"
	EventUserDisconnected      = "user_disconnected"
	EventProfileUpdated        = "profile_updated"
	EventFriendRequest         = "friend_request"
	EventFriendRequestAccepted = "friend_request_accepted"
	EventFriendRequestRejected = "friend_request_rejected"
)

// Room scope types accepted on join/leave/typing frames.
const (
	ScopePublic  = "public"
	ScopePrivate = "private"
	ScopeUser    = "user"
)

// RoomKey is the canonical internal identifier of one fan-out scope.
type RoomKey string

func PublicRoomKey(roomID string) RoomKey {
	return RoomKey("room_" + roomID)
}

func PrivateRoomKey(privateRoomID string) RoomKey {
	return RoomKey("private_" + privateRoomID)
}

// UserRoomKey is the per-user notification scope (friend request events).
func UserRoomKey(walletAddress string) RoomKey {
	return RoomKey("user_" + walletAddress)
}

type JoinedPayload struct {
	Room string `json:"room"`
	Type string `json:"type"`
}

type TypingPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	IsTyping    bool   `json:"isTyping"`
}

type ConnectedPayload struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type DisconnectedPayload struct {
	UserID string `json:"userId"`
}

type MessageDeletedPayload struct {
	MessageID     string `json:"messageId"`
	DeleteForAll  bool   `json:"deleteForAll"`
	WalletAddress string `json:"walletAddress"`
}

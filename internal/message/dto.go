package message

// PostMessageCommand carries one inbound message. Exactly one of Room
// (public room token, name or id) and PrivateRoomID must be set.
type PostMessageCommand struct {
	Content       string `json:"content"`
	WalletAddress string `json:"walletAddress"`
	SenderName    string `json:"sender"`
	Type          string `json:"type"`
	FileURL       string `json:"fileUrl"`
	FileName      string `json:"fileName"`
	Room          string `json:"room"`
	PrivateRoomID string `json:"privateRoomId"`
}

// ListMessagesQuery reads history for one scope, newest-first with a limit,
// returned to the caller oldest-first.
type ListMessagesQuery struct {
	Room          string
	PrivateRoomID string
	Limit         int
}

// MessageDTO mirrors the wire shape clients already depend on, including
// the duplicated sender fields.
type MessageDTO struct {
	ID            string  `json:"id"`
	Content       string  `json:"content"`
	Sender        string  `json:"sender"`
	SenderID      string  `json:"senderId"`
	ReceiverID    *string `json:"receiverId"`
	RoomID        *string `json:"roomId"`
	PrivateRoomID *string `json:"privateRoomId"`
	Type          string  `json:"type"`
	FileURL       *string `json:"fileUrl"`
	FileName      *string `json:"fileName"`
	Timestamp     int64   `json:"timestamp"`
	IsDeleted     bool    `json:"isDeleted"`
	WalletAddress string  `json:"walletAddress"`
	Avatar        string  `json:"avatar"`
	DisplayName   string  `json:"displayName"`
}

package room

import "time"

type RoomDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsPrivate   bool       `json:"isPrivate"`
	CreatedAt   *time.Time `json:"createdAt"`
}

type PrivateRoomDTO struct {
	ID        string     `json:"id"`
	User1ID   string     `json:"user1Id"`
	User2ID   string     `json:"user2Id"`
	CreatedAt *time.Time `json:"createdAt"`
}

package room

import (
	"context"

	models "github.com/F2fX4553/polychat/internal/room/model"

	"github.com/google/uuid"
)

type RoomRepository interface {
	CreateRoom(ctx context.Context, room *models.ChatRoom) error
	FindRoomByName(ctx context.Context, name string) (*models.ChatRoom, error)
	FindRoomByID(ctx context.Context, id uuid.UUID) (*models.ChatRoom, error)
	ListPublicRooms(ctx context.Context) ([]models.ChatRoom, error)
	CountRooms(ctx context.Context) (int, error)

	CreatePrivateRoom(ctx context.Context, room *models.PrivateChatRoom) error
	FindPrivateRoomByID(ctx context.Context, id uuid.UUID) (*models.PrivateChatRoom, error)
	// FindPrivateRoomByPair matches either stored ordering of the pair.
	FindPrivateRoomByPair(ctx context.Context, userA, userB string) (*models.PrivateChatRoom, error)
	ListPrivateRoomsForUser(ctx context.Context, walletAddress string) ([]models.PrivateChatRoom, error)
}

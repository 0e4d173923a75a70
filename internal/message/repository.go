package message

import (
	"context"

	models "github.com/F2fX4553/polychat/internal/message/model"

	"github.com/google/uuid"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg *models.Message) error
	GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error)
	SoftDeleteMessage(ctx context.Context, id uuid.UUID) error

	// Read paths exclude soft-deleted rows and return newest first.
	MessagesByRoom(ctx context.Context, roomID uuid.UUID, limit int) ([]models.Message, error)
	MessagesByPrivateRoom(ctx context.Context, privateRoomID uuid.UUID, limit int) ([]models.Message, error)
	LastMessageForPrivateRoom(ctx context.Context, privateRoomID uuid.UUID) (*models.Message, error)
}

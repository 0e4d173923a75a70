package repository

import (
	"context"
	"database/sql"

	models "github.com/F2fX4553/polychat/internal/message/model"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository struct {
	db     *bun.DB
	logger logger.Logger
}

func NewMessageRepository(db *bun.DB, logger logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.CreateMessage.Insert")
	}
	return nil
}

func (r *MessageRepository) GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	msg := new(models.Message)
	err := r.db.NewSelect().Model(msg).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "messageRepo.GetMessage.Scan")
	}
	return msg, nil
}

func (r *MessageRepository) SoftDeleteMessage(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*models.Message)(nil)).
		Set("is_deleted = ?", true).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.SoftDeleteMessage.Update")
	}
	return nil
}

func (r *MessageRepository) MessagesByRoom(ctx context.Context, roomID uuid.UUID, limit int) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("room_id = ? AND is_deleted = ?", roomID, false).
		Order("timestamp DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.MessagesByRoom.Scan")
	}
	return msgs, nil
}

func (r *MessageRepository) MessagesByPrivateRoom(ctx context.Context, privateRoomID uuid.UUID, limit int) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("private_room_id = ? AND is_deleted = ?", privateRoomID, false).
		Order("timestamp DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.MessagesByPrivateRoom.Scan")
	}
	return msgs, nil
}

func (r *MessageRepository) LastMessageForPrivateRoom(ctx context.Context, privateRoomID uuid.UUID) (*models.Message, error) {
	msg := new(models.Message)
	err := r.db.NewSelect().
		Model(msg).
		Where("private_room_id = ? AND is_deleted = ?", privateRoomID, false).
		Order("timestamp DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "messageRepo.LastMessageForPrivateRoom.Scan")
	}
	return msg, nil
}

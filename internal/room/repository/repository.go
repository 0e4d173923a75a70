package repository

import (
	"context"
	"database/sql"

	models "github.com/F2fX4553/polychat/internal/room/model"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrPrivateRoomNotFound = errors.New("private room not found")
	ErrDuplicateRoomName   = errors.New("room name already exists")
)

type RoomRepository struct {
	db     *bun.DB
	logger logger.Logger
}

func NewRoomRepository(db *bun.DB, logger logger.Logger) *RoomRepository {
	return &RoomRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RoomRepository) CreateRoom(ctx context.Context, room *models.ChatRoom) error {
	_, err := r.db.NewInsert().Model(room).Returning("*").Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRoomName
		}
		return errors.Wrap(err, "roomRepo.CreateRoom.Insert")
	}
	return nil
}

func (r *RoomRepository) FindRoomByName(ctx context.Context, name string) (*models.ChatRoom, error) {
	room := new(models.ChatRoom)
	err := r.db.NewSelect().Model(room).Where("name = ?", name).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, errors.Wrap(err, "roomRepo.FindRoomByName.Scan")
	}
	return room, nil
}

func (r *RoomRepository) FindRoomByID(ctx context.Context, id uuid.UUID) (*models.ChatRoom, error) {
	room := new(models.ChatRoom)
	err := r.db.NewSelect().Model(room).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, errors.Wrap(err, "roomRepo.FindRoomByID.Scan")
	}
	return room, nil
}

func (r *RoomRepository) ListPublicRooms(ctx context.Context) ([]models.ChatRoom, error) {
	var rooms []models.ChatRoom
	err := r.db.NewSelect().Model(&rooms).Where("is_private = ?", false).Order("created_at ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "roomRepo.ListPublicRooms.Scan")
	}
	return rooms, nil
}

func (r *RoomRepository) CountRooms(ctx context.Context) (int, error) {
	count, err := r.db.NewSelect().Model((*models.ChatRoom)(nil)).Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "roomRepo.CountRooms.Count")
	}
	return count, nil
}

func (r *RoomRepository) CreatePrivateRoom(ctx context.Context, room *models.PrivateChatRoom) error {
	_, err := r.db.NewInsert().Model(room).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "roomRepo.CreatePrivateRoom.Insert")
	}
	return nil
}

func (r *RoomRepository) FindPrivateRoomByID(ctx context.Context, id uuid.UUID) (*models.PrivateChatRoom, error) {
	room := new(models.PrivateChatRoom)
	err := r.db.NewSelect().Model(room).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPrivateRoomNotFound
		}
		return nil, errors.Wrap(err, "roomRepo.FindPrivateRoomByID.Scan")
	}
	return room, nil
}

func (r *RoomRepository) FindPrivateRoomByPair(ctx context.Context, userA, userB string) (*models.PrivateChatRoom, error) {
	room := new(models.PrivateChatRoom)
	err := r.db.NewSelect().
		Model(room).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)", userA, userB, userB, userA).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPrivateRoomNotFound
		}
		return nil, errors.Wrap(err, "roomRepo.FindPrivateRoomByPair.Scan")
	}
	return room, nil
}

func (r *RoomRepository) ListPrivateRoomsForUser(ctx context.Context, walletAddress string) ([]models.PrivateChatRoom, error) {
	var rooms []models.PrivateChatRoom
	err := r.db.NewSelect().
		Model(&rooms).
		Where("user1_id = ? OR user2_id = ?", walletAddress, walletAddress).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "roomRepo.ListPrivateRoomsForUser.Scan")
	}
	return rooms, nil
}

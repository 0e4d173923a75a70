package repository

import (
	"context"
	"database/sql"
	"time"

	models "github.com/F2fX4553/polychat/internal/friend/model"
	roomModels "github.com/F2fX4553/polychat/internal/room/model"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var ErrRequestNotFound = errors.New("friend request not found")

type FriendRepository struct {
	db     *bun.DB
	logger logger.Logger
}

func NewFriendRepository(db *bun.DB, logger logger.Logger) *FriendRepository {
	return &FriendRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FriendRepository) UpsertPendingRequest(ctx context.Context, senderID, receiverID string) error {
	req := &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(req).
		On("CONFLICT (sender_id, receiver_id) DO UPDATE").
		Set("status = EXCLUDED.status").
		Set("created_at = EXCLUDED.created_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "friendRepo.UpsertPendingRequest.Insert")
	}
	return nil
}

func (r *FriendRepository) FindPendingRequest(ctx context.Context, senderID, receiverID string) (*models.FriendRequest, error) {
	req := new(models.FriendRequest)
	err := r.db.NewSelect().
		Model(req).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, models.StatusPending).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, errors.Wrap(err, "friendRepo.FindPendingRequest.Scan")
	}
	return req, nil
}

// AcceptRequest applies the whole accept transition in one transaction:
// terminal status on the request row, both friendship edges and the pair's
// private room. The guarded update keeps concurrent accept/reject calls on
// the same pair from both succeeding.
func (r *FriendRepository) AcceptRequest(ctx context.Context, senderID, receiverID string) (*roomModels.PrivateChatRoom, error) {
	var room *roomModels.PrivateChatRoom

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.FriendRequest)(nil)).
			Set("status = ?", models.StatusAccepted).
			Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, models.StatusPending).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "acceptRequest.updateStatus")
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrRequestNotFound
		}

		// edges may already exist when a revived request is re-accepted
		edges := []models.Friendship{
			{UserID: senderID, FriendID: receiverID, CreatedAt: time.Now()},
			{UserID: receiverID, FriendID: senderID, CreatedAt: time.Now()},
		}
		if _, err := tx.NewInsert().Model(&edges).On("CONFLICT DO NOTHING").Exec(ctx); err != nil {
			return errors.Wrap(err, "acceptRequest.insertEdges")
		}

		existing := new(roomModels.PrivateChatRoom)
		err = tx.NewSelect().
			Model(existing).
			Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
				senderID, receiverID, receiverID, senderID).
			Scan(ctx)
		switch {
		case err == nil:
			room = existing
			return nil
		case errors.Is(err, sql.ErrNoRows):
			// fall through to create
		default:
			return errors.Wrap(err, "acceptRequest.findPrivateRoom")
		}

		created := &roomModels.PrivateChatRoom{User1ID: senderID, User2ID: receiverID}
		if _, err := tx.NewInsert().Model(created).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "acceptRequest.createPrivateRoom")
		}
		room = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *FriendRepository) RejectRequest(ctx context.Context, senderID, receiverID string) error {
	res, err := r.db.NewUpdate().
		Model((*models.FriendRequest)(nil)).
		Set("status = ?", models.StatusRejected).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, models.StatusPending).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "friendRepo.RejectRequest.Update")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *FriendRepository) ListFriendIDs(ctx context.Context, walletAddress string) ([]string, error) {
	var ids []string
	err := r.db.NewSelect().
		Model((*models.Friendship)(nil)).
		Column("friend_id").
		Where("user_id = ?", walletAddress).
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.ListFriendIDs.Scan")
	}
	return ids, nil
}

func (r *FriendRepository) IsFriend(ctx context.Context, userID, friendID string) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*models.Friendship)(nil)).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "friendRepo.IsFriend.Count")
	}
	return count > 0, nil
}

func (r *FriendRepository) PendingReceived(ctx context.Context, walletAddress string) ([]models.FriendRequest, error) {
	var reqs []models.FriendRequest
	err := r.db.NewSelect().
		Model(&reqs).
		Where("receiver_id = ? AND status = ?", walletAddress, models.StatusPending).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.PendingReceived.Scan")
	}
	return reqs, nil
}

func (r *FriendRepository) SentRequests(ctx context.Context, walletAddress string) ([]models.FriendRequest, error) {
	var reqs []models.FriendRequest
	err := r.db.NewSelect().
		Model(&reqs).
		Where("sender_id = ?", walletAddress).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.SentRequests.Scan")
	}
	return reqs, nil
}

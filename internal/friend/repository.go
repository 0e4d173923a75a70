package friend

import (
	"context"

	models "github.com/F2fX4553/polychat/internal/friend/model"
	roomModels "github.com/F2fX4553/polychat/internal/room/model"
)

type FriendRepository interface {
	// UpsertPendingRequest inserts the pending row for the ordered pair,
	// reviving a terminal (accepted/rejected) row back to pending with a
	// fresh created_at. A row that is already pending is left untouched;
	// callers guard against that case via FindPendingRequest.
	UpsertPendingRequest(ctx context.Context, senderID, receiverID string) error

	FindPendingRequest(ctx context.Context, senderID, receiverID string) (*models.FriendRequest, error)

	// AcceptRequest runs the only multi-entity transaction in the system:
	// mark the pending row accepted, insert both friendship edges and
	// provision the pair's private room unless one already exists in either
	// ordering. All-or-nothing.
	AcceptRequest(ctx context.Context, senderID, receiverID string) (*roomModels.PrivateChatRoom, error)

	RejectRequest(ctx context.Context, senderID, receiverID string) error

	ListFriendIDs(ctx context.Context, walletAddress string) ([]string, error)
	IsFriend(ctx context.Context, userID, friendID string) (bool, error)

	PendingReceived(ctx context.Context, walletAddress string) ([]models.FriendRequest, error)
	SentRequests(ctx context.Context, walletAddress string) ([]models.FriendRequest, error)
}

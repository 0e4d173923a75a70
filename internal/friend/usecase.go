package friend

import "context"

type FriendUsecase interface {
	// SendRequest inserts a pending request for the ordered pair and
	// notifies the receiver's notification room. Both parties must exist;
	// an already-pending request for the same ordered pair is a conflict.
	SendRequest(ctx context.Context, senderID, receiverID string) error

	// ResolveRequest terminates a pending request. On accept it atomically
	// inserts both friendship edges, marks the row accepted and provisions
	// the pair's private room (at most one per unordered pair), returning
	// its id. On reject it only marks the row. The sender's notification
	// room learns the outcome either way.
	ResolveRequest(ctx context.Context, senderID, receiverID, action string) (privateRoomID string, err error)

	// ListFriends joins each friend's profile with the pair's private room.
	ListFriends(ctx context.Context, walletAddress string) ([]*FriendDTO, error)

	// ListRequests filters by direction: received lists pending requests to
	// the user, sent lists all requests the user has made.
	ListRequests(ctx context.Context, walletAddress, direction string) ([]*RequestDTO, error)

	// ListPrivateChats returns the user's private rooms with the other
	// party's profile and a last-message preview.
	ListPrivateChats(ctx context.Context, walletAddress string) ([]*PrivateChatDTO, error)
}

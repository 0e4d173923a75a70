package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/F2fX4553/polychat/internal/friend"
	friendModels "github.com/F2fX4553/polychat/internal/friend/model"
	friendRepo "github.com/F2fX4553/polychat/internal/friend/repository"
	"github.com/F2fX4553/polychat/internal/message"
	msgModels "github.com/F2fX4553/polychat/internal/message/model"
	msgRepo "github.com/F2fX4553/polychat/internal/message/repository"
	"github.com/F2fX4553/polychat/internal/realtime"
	"github.com/F2fX4553/polychat/internal/room"
	roomRepo "github.com/F2fX4553/polychat/internal/room/repository"
	"github.com/F2fX4553/polychat/internal/user"
	userModels "github.com/F2fX4553/polychat/internal/user/model"
	userRepo "github.com/F2fX4553/polychat/internal/user/repository"
	appErrors "github.com/F2fX4553/polychat/pkg/errors"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/pkg/errors"
)

type FriendUsecase struct {
	requests  friend.FriendRepository
	users     user.UserRepository
	rooms     room.RoomRepository
	messages  message.MessageRepository
	publisher realtime.Publisher
	logger    logger.Logger

	// accept/reject must be serialized per unordered pair to keep the
	// one-private-room and one-terminal-status invariants under races.
	pairMu    sync.Mutex
	pairLocks map[string]*sync.Mutex
}

func NewFriendUsecase(
	requests friend.FriendRepository,
	users user.UserRepository,
	rooms room.RoomRepository,
	messages message.MessageRepository,
	publisher realtime.Publisher,
	logger logger.Logger,
) *FriendUsecase {
	return &FriendUsecase{
		requests:  requests,
		users:     users,
		rooms:     rooms,
		messages:  messages,
		publisher: publisher,
		logger:    logger,
		pairLocks: make(map[string]*sync.Mutex),
	}
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func (uc *FriendUsecase) lockPair(a, b string) *sync.Mutex {
	key := pairKey(a, b)
	uc.pairMu.Lock()
	mu, ok := uc.pairLocks[key]
	if !ok {
		mu = &sync.Mutex{}
		uc.pairLocks[key] = mu
	}
	uc.pairMu.Unlock()
	mu.Lock()
	return mu
}

func (uc *FriendUsecase) SendRequest(ctx context.Context, senderID, receiverID string) error {
	if senderID == "" || receiverID == "" {
		return appErrors.ErrWalletRequired
	}

	sender, err := uc.getUser(ctx, senderID)
	if err != nil {
		return err
	}
	if _, err := uc.getUser(ctx, receiverID); err != nil {
		return err
	}

	_, err = uc.requests.FindPendingRequest(ctx, senderID, receiverID)
	switch {
	case err == nil:
		return appErrors.ErrDuplicateRequest
	case errors.Is(err, friendRepo.ErrRequestNotFound):
		// no pending row; proceed
	default:
		return appErrors.ErrStoreUnavailable(err)
	}

	if err := uc.requests.UpsertPendingRequest(ctx, senderID, receiverID); err != nil {
		uc.logger.Error("failed to store friend request", "sender", senderID, "receiver", receiverID, "err", err)
		return appErrors.ErrStoreUnavailable(err)
	}

	now := time.Now()
	uc.publisher.Publish(realtime.UserRoomKey(receiverID), realtime.Event{
		Name: realtime.EventFriendRequest,
		Data: &friend.RequestDTO{
			SenderID:     senderID,
			SenderName:   sender.DisplayName,
			SenderAvatar: sender.Avatar,
			ReceiverID:   receiverID,
			Status:       friendModels.StatusPending,
			CreatedAt:    &now,
		},
	})
	return nil
}

func (uc *FriendUsecase) ResolveRequest(ctx context.Context, senderID, receiverID, action string) (string, error) {
	if senderID == "" || receiverID == "" {
		return "", appErrors.ErrWalletRequired
	}
	if action != friend.ActionAccept && action != friend.ActionReject {
		return "", appErrors.ErrInvalidAction
	}

	mu := uc.lockPair(senderID, receiverID)
	defer mu.Unlock()

	if action == friend.ActionReject {
		if err := uc.requests.RejectRequest(ctx, senderID, receiverID); err != nil {
			if errors.Is(err, friendRepo.ErrRequestNotFound) {
				return "", appErrors.ErrRequestNotFound
			}
			return "", appErrors.ErrStoreUnavailable(err)
		}
		uc.publisher.Publish(realtime.UserRoomKey(senderID), realtime.Event{
			Name: realtime.EventFriendRequestRejected,
			Data: &friend.RejectedEventPayload{SenderID: senderID, ReceiverID: receiverID},
		})
		return "", nil
	}

	privRoom, err := uc.requests.AcceptRequest(ctx, senderID, receiverID)
	if err != nil {
		if errors.Is(err, friendRepo.ErrRequestNotFound) {
			return "", appErrors.ErrRequestNotFound
		}
		uc.logger.Error("friend accept transaction failed", "sender", senderID, "receiver", receiverID, "err", err)
		return "", appErrors.ErrStoreUnavailable(err)
	}

	payload := &friend.AcceptedEventPayload{
		SenderID:      senderID,
		ReceiverID:    receiverID,
		PrivateRoomID: privRoom.ID.String(),
	}
	if sender, err := uc.getUser(ctx, senderID); err == nil {
		payload.SenderName = sender.DisplayName
		payload.SenderAvatar = sender.Avatar
	}
	if receiver, err := uc.getUser(ctx, receiverID); err == nil {
		payload.ReceiverName = receiver.DisplayName
		payload.ReceiverAvatar = receiver.Avatar
	}

	uc.publisher.Publish(realtime.UserRoomKey(senderID), realtime.Event{
		Name: realtime.EventFriendRequestAccepted,
		Data: payload,
	})
	return payload.PrivateRoomID, nil
}

func (uc *FriendUsecase) ListFriends(ctx context.Context, walletAddress string) ([]*friend.FriendDTO, error) {
	if walletAddress == "" {
		return nil, appErrors.ErrWalletRequired
	}
	if _, err := uc.getUser(ctx, walletAddress); err != nil {
		return nil, err
	}

	ids, err := uc.requests.ListFriendIDs(ctx, walletAddress)
	if err != nil {
		return nil, appErrors.ErrStoreUnavailable(err)
	}

	result := make([]*friend.FriendDTO, 0, len(ids))
	for _, friendID := range ids {
		u, err := uc.users.GetUser(ctx, friendID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				continue
			}
			return nil, appErrors.ErrStoreUnavailable(err)
		}

		dto := friendToDTO(u)
		privRoom, err := uc.rooms.FindPrivateRoomByPair(ctx, walletAddress, friendID)
		switch {
		case err == nil:
			dto.PrivateRoomID = privRoom.ID.String()
		case errors.Is(err, roomRepo.ErrPrivateRoomNotFound):
			// friendship without a room is legal for legacy rows
		default:
			return nil, appErrors.ErrStoreUnavailable(err)
		}
		result = append(result, dto)
	}
	return result, nil
}

func (uc *FriendUsecase) ListRequests(ctx context.Context, walletAddress, direction string) ([]*friend.RequestDTO, error) {
	if walletAddress == "" {
		return nil, appErrors.ErrWalletRequired
	}

	if direction == friend.DirectionReceived {
		reqs, err := uc.requests.PendingReceived(ctx, walletAddress)
		if err != nil {
			return nil, appErrors.ErrStoreUnavailable(err)
		}
		result := make([]*friend.RequestDTO, 0, len(reqs))
		for i := range reqs {
			sender, err := uc.users.GetUser(ctx, reqs[i].SenderID)
			if err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					continue
				}
				return nil, appErrors.ErrStoreUnavailable(err)
			}
			created := reqs[i].CreatedAt
			result = append(result, &friend.RequestDTO{
				SenderID:     sender.WalletAddress,
				SenderName:   sender.DisplayName,
				SenderAvatar: sender.Avatar,
				Status:       reqs[i].Status,
				CreatedAt:    &created,
			})
		}
		return result, nil
	}

	reqs, err := uc.requests.SentRequests(ctx, walletAddress)
	if err != nil {
		return nil, appErrors.ErrStoreUnavailable(err)
	}
	result := make([]*friend.RequestDTO, 0, len(reqs))
	for i := range reqs {
		receiver, err := uc.users.GetUser(ctx, reqs[i].ReceiverID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				continue
			}
			return nil, appErrors.ErrStoreUnavailable(err)
		}
		created := reqs[i].CreatedAt
		result = append(result, &friend.RequestDTO{
			ReceiverID:     receiver.WalletAddress,
			ReceiverName:   receiver.DisplayName,
			ReceiverAvatar: receiver.Avatar,
			Status:         reqs[i].Status,
			CreatedAt:      &created,
		})
	}
	return result, nil
}

func (uc *FriendUsecase) ListPrivateChats(ctx context.Context, walletAddress string) ([]*friend.PrivateChatDTO, error) {
	if walletAddress == "" {
		return nil, appErrors.ErrWalletRequired
	}

	privRooms, err := uc.rooms.ListPrivateRoomsForUser(ctx, walletAddress)
	if err != nil {
		return nil, appErrors.ErrStoreUnavailable(err)
	}

	result := make([]*friend.PrivateChatDTO, 0, len(privRooms))
	for i := range privRooms {
		other, err := uc.users.GetUser(ctx, privRooms[i].OtherParty(walletAddress))
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				continue
			}
			return nil, appErrors.ErrStoreUnavailable(err)
		}

		chat := &friend.PrivateChatDTO{
			ID:          privRooms[i].ID.String(),
			UserID:      other.WalletAddress,
			DisplayName: other.DisplayName,
			Avatar:      other.Avatar,
		}
		if !other.LastActive.IsZero() {
			t := other.LastActive
			chat.LastActive = &t
		}

		last, err := uc.messages.LastMessageForPrivateRoom(ctx, privRooms[i].ID)
		switch {
		case err == nil:
			sender, err := uc.users.GetUser(ctx, last.SenderID)
			if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
				return nil, appErrors.ErrStoreUnavailable(err)
			}
			chat.LastMessage = previewToDTO(last, sender)
		case errors.Is(err, msgRepo.ErrMessageNotFound):
			// empty chat
		default:
			return nil, appErrors.ErrStoreUnavailable(err)
		}
		result = append(result, chat)
	}
	return result, nil
}

func (uc *FriendUsecase) getUser(ctx context.Context, walletAddress string) (*userModels.User, error) {
	u, err := uc.users.GetUser(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidParty
		}
		return nil, appErrors.ErrStoreUnavailable(err)
	}
	return u, nil
}

func friendToDTO(u *userModels.User) *friend.FriendDTO {
	dto := &friend.FriendDTO{
		WalletAddress: u.WalletAddress,
		DisplayName:   u.DisplayName,
		Avatar:        u.Avatar,
		Bio:           u.Bio,
	}
	if !u.LastActive.IsZero() {
		t := u.LastActive
		dto.LastActive = &t
	}
	return dto
}

func previewToDTO(m *msgModels.Message, sender *userModels.User) *message.MessageDTO {
	displayName := userModels.DefaultDisplayName(m.SenderID)
	avatar := userModels.DefaultAvatar(m.SenderID)
	if sender != nil {
		displayName = sender.DisplayName
		avatar = sender.Avatar
	}

	dto := &message.MessageDTO{
		ID:            m.ID.String(),
		Content:       m.Content,
		Sender:        displayName,
		SenderID:      m.SenderID,
		ReceiverID:    m.ReceiverID,
		Type:          m.Type,
		FileURL:       m.FileURL,
		FileName:      m.FileName,
		Timestamp:     m.Timestamp.Unix(),
		IsDeleted:     m.IsDeleted,
		WalletAddress: m.SenderID,
		Avatar:        avatar,
		DisplayName:   displayName,
	}
	if m.RoomID != nil {
		s := m.RoomID.String()
		dto.RoomID = &s
	}
	if m.PrivateRoomID != nil {
		s := m.PrivateRoomID.String()
		dto.PrivateRoomID = &s
	}
	return dto
}

package usecase

import (
	"context"

	"github.com/F2fX4553/polychat/internal/message"
	models "github.com/F2fX4553/polychat/internal/message/model"
	"github.com/F2fX4553/polychat/internal/message/repository"
	"github.com/F2fX4553/polychat/internal/realtime"
	"github.com/F2fX4553/polychat/internal/room"
	"github.com/F2fX4553/polychat/internal/user"
	appErrors "github.com/F2fX4553/polychat/pkg/errors"
	"github.com/F2fX4553/polychat/pkg/logger"
	"github.com/F2fX4553/polychat/pkg/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultHistoryLimit = 50

type MessageUsecase struct {
	repo      message.MessageRepository
	users     user.UserUsecase
	rooms     room.RoomUsecase
	publisher realtime.Publisher
	logger    logger.Logger
}

func NewMessageUsecase(
	repo message.MessageRepository,
	users user.UserUsecase,
	rooms room.RoomUsecase,
	publisher realtime.Publisher,
	logger logger.Logger,
) *MessageUsecase {
	return &MessageUsecase{
		repo:      repo,
		users:     users,
		rooms:     rooms,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *MessageUsecase) Post(ctx context.Context, cmd message.PostMessageCommand) (*message.MessageDTO, error) {
	if cmd.WalletAddress == "" {
		return nil, appErrors.ErrWalletRequired
	}
	if cmd.Content == "" {
		return nil, appErrors.ErrContentRequired
	}
	if cmd.Room == "" && cmd.PrivateRoomID == "" {
		return nil, appErrors.ErrDestinationRequired
	}
	if cmd.Type == models.TypeImage || cmd.Type == models.TypeFile {
		if cmd.FileName != "" && !utils.AllowedFile(cmd.FileName) {
			return nil, appErrors.ErrFileTypeNotAllowed
		}
	}

	sender, err := uc.users.TouchPresence(ctx, cmd.WalletAddress, cmd.SenderName)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		Content:  cmd.Content,
		SenderID: cmd.WalletAddress,
		Type:     cmd.Type,
	}
	if msg.Type == "" {
		msg.Type = models.TypeText
	}
	if cmd.FileURL != "" {
		msg.FileURL = &cmd.FileURL
	}
	if cmd.FileName != "" {
		msg.FileName = &cmd.FileName
	}

	var key realtime.RoomKey
	if cmd.PrivateRoomID != "" {
		privRoom, err := uc.rooms.ResolvePrivate(ctx, cmd.PrivateRoomID)
		if err != nil {
			return nil, err
		}
		id, _ := uuid.Parse(privRoom.ID)
		msg.PrivateRoomID = &id
		key = realtime.PrivateRoomKey(privRoom.ID)
	} else {
		pubRoom, err := uc.rooms.ResolvePublic(ctx, cmd.Room)
		if err != nil {
			return nil, err
		}
		id, _ := uuid.Parse(pubRoom.ID)
		msg.RoomID = &id
		key = realtime.PublicRoomKey(pubRoom.ID)
	}

	// Persist before publishing: subscribers must never act on an event
	// whose message is not durably recorded.
	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to persist message", "sender", cmd.WalletAddress, "err", err)
		return nil, appErrors.ErrStoreUnavailable(err)
	}

	dto := toDTO(msg, sender)
	uc.publisher.Publish(key, realtime.Event{Name: realtime.EventNewMessage, Data: dto})
	return dto, nil
}

func (uc *MessageUsecase) List(ctx context.Context, q message.ListMessagesQuery) ([]*message.MessageDTO, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var (
		msgs []models.Message
		err  error
	)
	switch {
	case q.PrivateRoomID != "":
		privRoom, rerr := uc.rooms.ResolvePrivate(ctx, q.PrivateRoomID)
		if rerr != nil {
			return nil, rerr
		}
		id, _ := uuid.Parse(privRoom.ID)
		msgs, err = uc.repo.MessagesByPrivateRoom(ctx, id, limit)
	case q.Room != "":
		pubRoom, rerr := uc.rooms.ResolvePublic(ctx, q.Room)
		if rerr != nil {
			return nil, rerr
		}
		id, _ := uuid.Parse(pubRoom.ID)
		msgs, err = uc.repo.MessagesByRoom(ctx, id, limit)
	default:
		return nil, appErrors.ErrDestinationRequired
	}
	if err != nil {
		return nil, appErrors.ErrStoreUnavailable(err)
	}

	// Repo returns newest first; clients render oldest first.
	result := make([]*message.MessageDTO, 0, len(msgs))
	profiles := make(map[string]*user.UserDTO)
	for i := len(msgs) - 1; i >= 0; i-- {
		m := &msgs[i]
		sender, ok := profiles[m.SenderID]
		if !ok {
			sender, err = uc.users.GetProfile(ctx, m.SenderID)
			if err != nil {
				return nil, err
			}
			profiles[m.SenderID] = sender
		}
		result = append(result, toDTO(m, sender))
	}
	return result, nil
}

func (uc *MessageUsecase) Delete(ctx context.Context, messageID, walletAddress string, deleteForAll bool) error {
	if walletAddress == "" {
		return appErrors.ErrWalletRequired
	}
	id, err := uuid.Parse(messageID)
	if err != nil {
		return appErrors.ErrMessageNotFound
	}

	msg, err := uc.repo.GetMessage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return appErrors.ErrMessageNotFound
		}
		return appErrors.ErrStoreUnavailable(err)
	}
	if msg.SenderID != walletAddress {
		return appErrors.ErrNotMessageOwner
	}

	// Both deletion modes collapse to the one soft-delete flag.
	if err := uc.repo.SoftDeleteMessage(ctx, id); err != nil {
		return appErrors.ErrStoreUnavailable(err)
	}

	if key, ok := scopeKey(msg); ok {
		uc.publisher.Publish(key, realtime.Event{
			Name: realtime.EventMessageDeleted,
			Data: realtime.MessageDeletedPayload{
				MessageID:     messageID,
				DeleteForAll:  deleteForAll,
				WalletAddress: walletAddress,
			},
		})
	}
	return nil
}

func (uc *MessageUsecase) Resend(ctx context.Context, messageID string) error {
	id, err := uuid.Parse(messageID)
	if err != nil {
		return appErrors.ErrMessageNotFound
	}

	msg, err := uc.repo.GetMessage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return appErrors.ErrMessageNotFound
		}
		return appErrors.ErrStoreUnavailable(err)
	}

	key, ok := scopeKey(msg)
	if !ok {
		return appErrors.ErrDestinationRequired
	}

	sender, err := uc.users.GetProfile(ctx, msg.SenderID)
	if err != nil {
		return err
	}
	uc.publisher.Publish(key, realtime.Event{Name: realtime.EventNewMessage, Data: toDTO(msg, sender)})
	return nil
}

func scopeKey(msg *models.Message) (realtime.RoomKey, bool) {
	switch {
	case msg.PrivateRoomID != nil:
		return realtime.PrivateRoomKey(msg.PrivateRoomID.String()), true
	case msg.RoomID != nil:
		return realtime.PublicRoomKey(msg.RoomID.String()), true
	default:
		return "", false
	}
}

func toDTO(m *models.Message, sender *user.UserDTO) *message.MessageDTO {
	dto := &message.MessageDTO{
		ID:            m.ID.String(),
		Content:       m.Content,
		Sender:        sender.DisplayName,
		SenderID:      m.SenderID,
		ReceiverID:    m.ReceiverID,
		Type:          m.Type,
		FileURL:       m.FileURL,
		FileName:      m.FileName,
		Timestamp:     m.Timestamp.Unix(),
		IsDeleted:     m.IsDeleted,
		WalletAddress: m.SenderID,
		Avatar:        sender.Avatar,
		DisplayName:   sender.DisplayName,
	}
	if m.RoomID != nil {
		s := m.RoomID.String()
		dto.RoomID = &s
	}
	if m.PrivateRoomID != nil {
		s := m.PrivateRoomID.String()
		dto.PrivateRoomID = &s
	}
	if m.Timestamp.IsZero() {
		dto.Timestamp = 0
	}
	return dto
}

package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/F2fX4553/polychat/internal/message"
	messageMocks "github.com/F2fX4553/polychat/internal/message/mocks"
	models "github.com/F2fX4553/polychat/internal/message/model"
	msgRepo "github.com/F2fX4553/polychat/internal/message/repository"
	"github.com/F2fX4553/polychat/internal/realtime"
	roomMocks "github.com/F2fX4553/polychat/internal/room/mocks"
	roomModels "github.com/F2fX4553/polychat/internal/room/model"
	roomUsecase "github.com/F2fX4553/polychat/internal/room/usecase"
	userMocks "github.com/F2fX4553/polychat/internal/user/mocks"
	userModels "github.com/F2fX4553/polychat/internal/user/model"
	userUsecase "github.com/F2fX4553/polychat/internal/user/usecase"
	appErrors "github.com/F2fX4553/polychat/pkg/errors"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWallet = "0xAbCdEf1234567890"

type recordingPublisher struct {
	mu     sync.Mutex
	events []realtime.Event
	keys   []realtime.RoomKey
}

func (p *recordingPublisher) Publish(key realtime.RoomKey, ev realtime.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) PublishExcept(key realtime.RoomKey, ev realtime.Event, _ string) {
	p.Publish(key, ev)
}

func (p *recordingPublisher) Broadcast(ev realtime.Event) {
	p.Publish("", ev)
}

type fixture struct {
	msgs    *messageMocks.MockMessageRepository
	users   *userMocks.MockUserRepository
	rooms   *roomMocks.MockRoomRepository
	pub     *recordingPublisher
	usecase *MessageUsecase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	msgs := messageMocks.NewMockMessageRepository(ctrl)
	users := userMocks.NewMockUserRepository(ctrl)
	rooms := roomMocks.NewMockRoomRepository(ctrl)
	pub := &recordingPublisher{}

	uc := NewMessageUsecase(
		msgs,
		userUsecase.NewUserUsecase(users, pub, logger.Logger{}, 5*time.Minute),
		roomUsecase.NewRoomUsecase(rooms, logger.Logger{}),
		pub,
		logger.Logger{},
	)
	return &fixture{msgs: msgs, users: users, rooms: rooms, pub: pub, usecase: uc}
}

func (f *fixture) expectKnownSender() {
	f.users.EXPECT().GetUser(gomock.Any(), testWallet).
		Return(&userModels.User{WalletAddress: testWallet, DisplayName: "alice", Avatar: "a.png"}, nil)
	f.users.EXPECT().TouchLastActive(gomock.Any(), testWallet, gomock.Any()).Return(nil)
}

func TestMessageUsecase_Post(t *testing.T) {
	roomID := uuid.New()
	general := &roomModels.ChatRoom{ID: roomID, Name: "General"}

	t.Run("persists before publishing to the room", func(t *testing.T) {
		f := newFixture(t)
		f.expectKnownSender()
		f.rooms.EXPECT().FindRoomByName(gomock.Any(), "General").Return(general, nil)

		persisted := false
		f.msgs.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *models.Message) error {
				m.ID = uuid.New()
				m.Timestamp = time.Now()
				persisted = true
				return nil
			})

		dto, err := f.usecase.Post(context.Background(), message.PostMessageCommand{
			Content:       "gm",
			WalletAddress: testWallet,
			Room:          "General",
		})
		require.NoError(t, err)
		assert.True(t, persisted)
		assert.Equal(t, "gm", dto.Content)
		assert.Equal(t, "alice", dto.Sender)
		require.NotNil(t, dto.RoomID)
		assert.Equal(t, roomID.String(), *dto.RoomID)

		require.Len(t, f.pub.events, 1)
		assert.Equal(t, realtime.EventNewMessage, f.pub.events[0].Name)
		assert.Equal(t, realtime.PublicRoomKey(roomID.String()), f.pub.keys[0])
	})

	t.Run("store failure suppresses the event entirely", func(t *testing.T) {
		f := newFixture(t)
		f.expectKnownSender()
		f.rooms.EXPECT().FindRoomByName(gomock.Any(), "General").Return(general, nil)
		f.msgs.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
			Return(errors.New("disk full"))

		_, err := f.usecase.Post(context.Background(), message.PostMessageCommand{
			Content:       "gm",
			WalletAddress: testWallet,
			Room:          "General",
		})
		assert.Equal(t, appErrors.CodeUnavailable, appErrors.CodeOf(err))
		assert.Empty(t, f.pub.events, "publish-then-persist is forbidden")
	})

	t.Run("private destination resolves through the private room", func(t *testing.T) {
		f := newFixture(t)
		f.expectKnownSender()

		privID := uuid.New()
		f.rooms.EXPECT().FindPrivateRoomByID(gomock.Any(), privID).
			Return(&roomModels.PrivateChatRoom{ID: privID, User1ID: testWallet, User2ID: "0xbbb"}, nil)
		f.msgs.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *models.Message) error {
				require.NotNil(t, m.PrivateRoomID)
				assert.Equal(t, privID, *m.PrivateRoomID)
				m.ID = uuid.New()
				return nil
			})

		_, err := f.usecase.Post(context.Background(), message.PostMessageCommand{
			Content:       "psst",
			WalletAddress: testWallet,
			PrivateRoomID: privID.String(),
		})
		require.NoError(t, err)
		require.Len(t, f.pub.keys, 1)
		assert.Equal(t, realtime.PrivateRoomKey(privID.String()), f.pub.keys[0])
	})

	t.Run("validation failures", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.Post(context.Background(), message.PostMessageCommand{Content: "x", Room: "General"})
		assert.ErrorIs(t, err, appErrors.ErrWalletRequired)

		_, err = f.usecase.Post(context.Background(), message.PostMessageCommand{WalletAddress: testWallet, Room: "General"})
		assert.ErrorIs(t, err, appErrors.ErrContentRequired)

		_, err = f.usecase.Post(context.Background(), message.PostMessageCommand{WalletAddress: testWallet, Content: "x"})
		assert.ErrorIs(t, err, appErrors.ErrDestinationRequired)

		_, err = f.usecase.Post(context.Background(), message.PostMessageCommand{
			WalletAddress: testWallet,
			Content:       "x",
			Room:          "General",
			Type:          models.TypeFile,
			FileName:      "payload.exe",
		})
		assert.ErrorIs(t, err, appErrors.ErrFileTypeNotAllowed)
	})
}

func TestMessageUsecase_List(t *testing.T) {
	roomID := uuid.New()
	general := &roomModels.ChatRoom{ID: roomID, Name: "General"}

	t.Run("returns history oldest first with sender profiles", func(t *testing.T) {
		f := newFixture(t)
		f.rooms.EXPECT().FindRoomByName(gomock.Any(), "General").Return(general, nil)

		newer := models.Message{ID: uuid.New(), Content: "second", SenderID: testWallet, RoomID: &roomID, Timestamp: time.Now()}
		older := models.Message{ID: uuid.New(), Content: "first", SenderID: testWallet, RoomID: &roomID, Timestamp: time.Now().Add(-time.Minute)}
		f.msgs.EXPECT().MessagesByRoom(gomock.Any(), roomID, 50).Return([]models.Message{newer, older}, nil)

		// one profile lookup for both messages
		f.users.EXPECT().GetUser(gomock.Any(), testWallet).
			Return(&userModels.User{WalletAddress: testWallet, DisplayName: "alice"}, nil)

		msgs, err := f.usecase.List(context.Background(), message.ListMessagesQuery{Room: "General"})
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "first", msgs[0].Content)
		assert.Equal(t, "second", msgs[1].Content)
		assert.Equal(t, "alice", msgs[0].DisplayName)
	})

	t.Run("requires a destination", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.List(context.Background(), message.ListMessagesQuery{})
		assert.ErrorIs(t, err, appErrors.ErrDestinationRequired)
	})
}

func TestMessageUsecase_Delete(t *testing.T) {
	msgID := uuid.New()
	roomID := uuid.New()
	owned := &models.Message{ID: msgID, SenderID: testWallet, RoomID: &roomID}

	t.Run("owner soft-deletes and the room is notified", func(t *testing.T) {
		f := newFixture(t)
		f.msgs.EXPECT().GetMessage(gomock.Any(), msgID).Return(owned, nil)
		f.msgs.EXPECT().SoftDeleteMessage(gomock.Any(), msgID).Return(nil)

		err := f.usecase.Delete(context.Background(), msgID.String(), testWallet, true)
		require.NoError(t, err)

		require.Len(t, f.pub.events, 1)
		assert.Equal(t, realtime.EventMessageDeleted, f.pub.events[0].Name)
		assert.Equal(t, realtime.PublicRoomKey(roomID.String()), f.pub.keys[0])

		payload, ok := f.pub.events[0].Data.(realtime.MessageDeletedPayload)
		require.True(t, ok)
		assert.Equal(t, msgID.String(), payload.MessageID)
		assert.True(t, payload.DeleteForAll)
	})

	t.Run("non-owner is rejected without deleting", func(t *testing.T) {
		f := newFixture(t)
		f.msgs.EXPECT().GetMessage(gomock.Any(), msgID).Return(owned, nil)

		err := f.usecase.Delete(context.Background(), msgID.String(), "0xsomeoneelse", false)
		assert.ErrorIs(t, err, appErrors.ErrNotMessageOwner)
		assert.Empty(t, f.pub.events)
	})

	t.Run("unknown message", func(t *testing.T) {
		f := newFixture(t)
		f.msgs.EXPECT().GetMessage(gomock.Any(), msgID).Return(nil, msgRepo.ErrMessageNotFound)

		err := f.usecase.Delete(context.Background(), msgID.String(), testWallet, false)
		assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newFixture(t)
		err := f.usecase.Delete(context.Background(), "not-a-uuid", testWallet, false)
		assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
	})
}

func TestMessageUsecase_Resend(t *testing.T) {
	msgID := uuid.New()
	roomID := uuid.New()

	f := newFixture(t)
	f.msgs.EXPECT().GetMessage(gomock.Any(), msgID).
		Return(&models.Message{ID: msgID, Content: "gm", SenderID: testWallet, RoomID: &roomID}, nil)
	f.users.EXPECT().GetUser(gomock.Any(), testWallet).
		Return(&userModels.User{WalletAddress: testWallet, DisplayName: "alice"}, nil)

	require.NoError(t, f.usecase.Resend(context.Background(), msgID.String()))

	require.Len(t, f.pub.events, 1)
	assert.Equal(t, realtime.EventNewMessage, f.pub.events[0].Name)
	assert.Equal(t, realtime.PublicRoomKey(roomID.String()), f.pub.keys[0])
}


package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/F2fX4553/polychat/internal/friend"
	friendMocks "github.com/F2fX4553/polychat/internal/friend/mocks"
	friendModels "github.com/F2fX4553/polychat/internal/friend/model"
	friendRepo "github.com/F2fX4553/polychat/internal/friend/repository"
	messageMocks "github.com/F2fX4553/polychat/internal/message/mocks"
	msgModels "github.com/F2fX4553/polychat/internal/message/model"
	msgRepo "github.com/F2fX4553/polychat/internal/message/repository"
	"github.com/F2fX4553/polychat/internal/realtime"
	roomMocks "github.com/F2fX4553/polychat/internal/room/mocks"
	roomModels "github.com/F2fX4553/polychat/internal/room/model"
	roomRepo "github.com/F2fX4553/polychat/internal/room/repository"
	userMocks "github.com/F2fX4553/polychat/internal/user/mocks"
	userModels "github.com/F2fX4553/polychat/internal/user/model"
	userRepo "github.com/F2fX4553/polychat/internal/user/repository"
	appErrors "github.com/F2fX4553/polychat/pkg/errors"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "0xAliceAliceAlice"
	bob   = "0xBobBobBobBobBob"
)

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
	requests *friendMocks.MockFriendRepository
	users    *userMocks.MockUserRepository
	rooms    *roomMocks.MockRoomRepository
	msgs     *messageMocks.MockMessageRepository
	pub      *recordingPublisher
	usecase  *FriendUsecase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		requests: friendMocks.NewMockFriendRepository(ctrl),
		users:    userMocks.NewMockUserRepository(ctrl),
		rooms:    roomMocks.NewMockRoomRepository(ctrl),
		msgs:     messageMocks.NewMockMessageRepository(ctrl),
		pub:      &recordingPublisher{},
	}
	f.usecase = NewFriendUsecase(f.requests, f.users, f.rooms, f.msgs, f.pub, logger.Logger{})
	return f
}

func (f *fixture) knowUser(wallet, name string) {
	f.users.EXPECT().GetUser(gomock.Any(), wallet).
		Return(&userModels.User{WalletAddress: wallet, DisplayName: name, Avatar: name + ".png"}, nil).
		AnyTimes()
}

func TestFriendUsecase_SendRequest(t *testing.T) {
	t.Run("pending request lands and notifies the receiver", func(t *testing.T) {
		f := newFixture(t)
		f.knowUser(alice, "alice")
		f.knowUser(bob, "bob")

		f.requests.EXPECT().FindPendingRequest(gomock.Any(), alice, bob).
			Return(nil, friendRepo.ErrRequestNotFound)
		f.requests.EXPECT().UpsertPendingRequest(gomock.Any(), alice, bob).Return(nil)

		require.NoError(t, f.usecase.SendRequest(context.Background(), alice, bob))

		require.Len(t, f.pub.events, 1)
		assert.Equal(t, realtime.EventFriendRequest, f.pub.events[0].Name)
		assert.Equal(t, realtime.UserRoomKey(bob), f.pub.keys[0])

		payload, ok := f.pub.events[0].Data.(*friend.RequestDTO)
		require.True(t, ok)
		assert.Equal(t, alice, payload.SenderID)
		assert.Equal(t, "alice", payload.SenderName)
		assert.Equal(t, friendModels.StatusPending, payload.Status)
	})

	t.Run("duplicate pending request is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.knowUser(alice, "alice")
		f.knowUser(bob, "bob")

		f.requests.EXPECT().FindPendingRequest(gomock.Any(), alice, bob).
			Return(&friendModels.FriendRequest{SenderID: alice, ReceiverID: bob, Status: friendModels.StatusPending}, nil)

		err := f.usecase.SendRequest(context.Background(), alice, bob)
		assert.ErrorIs(t, err, appErrors.ErrDuplicateRequest)
		assert.Empty(t, f.pub.events)
	})

	t.Run("terminal row does not block a new request", func(t *testing.T) {
		f := newFixture(t)
		f.knowUser(alice, "alice")
		f.knowUser(bob, "bob")

		// the prior rejected row is invisible to the pending lookup; the
		// upsert revives it
		f.requests.EXPECT().FindPendingRequest(gomock.Any(), alice, bob).
			Return(nil, friendRepo.ErrRequestNotFound)
		f.requests.EXPECT().UpsertPendingRequest(gomock.Any(), alice, bob).Return(nil)

		require.NoError(t, f.usecase.SendRequest(context.Background(), alice, bob))
	})

	t.Run("unknown party", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUser(gomock.Any(), alice).Return(nil, userRepo.ErrUserNotFound)

		err := f.usecase.SendRequest(context.Background(), alice, bob)
		assert.ErrorIs(t, err, appErrors.ErrInvalidParty)
	})

	t.Run("missing ids", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.usecase.SendRequest(context.Background(), "", bob), appErrors.ErrWalletRequired)
		assert.ErrorIs(t, f.usecase.SendRequest(context.Background(), alice, ""), appErrors.ErrWalletRequired)
	})
}

func TestFriendUsecase_ResolveRequest(t *testing.T) {
	t.Run("accept returns the private room and notifies the sender", func(t *testing.T) {
		f := newFixture(t)
		f.knowUser(alice, "alice")
		f.knowUser(bob, "bob")

		privRoom := &roomModels.PrivateChatRoom{ID: uuid.New(), User1ID: alice, User2ID: bob}
		f.requests.EXPECT().AcceptRequest(gomock.Any(), alice, bob).Return(privRoom, nil)

		roomID, err := f.usecase.ResolveRequest(context.Background(), alice, bob, friend.ActionAccept)
		require.NoError(t, err)
		assert.Equal(t, privRoom.ID.String(), roomID)

		require.Len(t, f.pub.events, 1)
		assert.Equal(t, realtime.EventFriendRequestAccepted, f.pub.events[0].Name)
		assert.Equal(t, realtime.UserRoomKey(alice), f.pub.keys[0])

		payload, ok := f.pub.events[0].Data.(*friend.AcceptedEventPayload)
		require.True(t, ok)
		assert.Equal(t, "alice", payload.SenderName)
		assert.Equal(t, "bob", payload.ReceiverName)
		assert.Equal(t, privRoom.ID.String(), payload.PrivateRoomID)
	})

	t.Run("reject only flips the row", func(t *testing.T) {
		f := newFixture(t)
		f.requests.EXPECT().RejectRequest(gomock.Any(), alice, bob).Return(nil)

		roomID, err := f.usecase.ResolveRequest(context.Background(), alice, bob, friend.ActionReject)
		require.NoError(t, err)
		assert.Empty(t, roomID)

		require.Len(t, f.pub.events, 1)
		assert.Equal(t, realtime.EventFriendRequestRejected, f.pub.events[0].Name)
		assert.Equal(t, realtime.UserRoomKey(alice), f.pub.keys[0])
	})

	t.Run("no pending row", func(t *testing.T) {
		f := newFixture(t)
		f.requests.EXPECT().AcceptRequest(gomock.Any(), alice, bob).Return(nil, friendRepo.ErrRequestNotFound)

		_, err := f.usecase.ResolveRequest(context.Background(), alice, bob, friend.ActionAccept)
		assert.ErrorIs(t, err, appErrors.ErrRequestNotFound)
		assert.Empty(t, f.pub.events)
	})

	t.Run("unknown action", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.ResolveRequest(context.Background(), alice, bob, "block")
		assert.ErrorIs(t, err, appErrors.ErrInvalidAction)
	})

	t.Run("concurrent accepts on the same pair resolve exactly once", func(t *testing.T) {
		f := newFixture(t)
		f.knowUser(alice, "alice")
		f.knowUser(bob, "bob")

		privRoom := &roomModels.PrivateChatRoom{ID: uuid.New(), User1ID: alice, User2ID: bob}
		first := f.requests.EXPECT().AcceptRequest(gomock.Any(), alice, bob).Return(privRoom, nil)
		f.requests.EXPECT().AcceptRequest(gomock.Any(), alice, bob).
			Return(nil, friendRepo.ErrRequestNotFound).After(first)

		var wg sync.WaitGroup
		results := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, results[n] = f.usecase.ResolveRequest(context.Background(), alice, bob, friend.ActionAccept)
			}(i)
		}
		wg.Wait()

		var succeeded, conflicted int
		for _, err := range results {
			if err == nil {
				succeeded++
			} else if appErrors.CodeOf(err) == appErrors.CodeNotFound {
				conflicted++
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, conflicted)
	})
}

func TestFriendUsecase_ListFriends(t *testing.T) {
	f := newFixture(t)
	f.knowUser(alice, "alice")
	f.knowUser(bob, "bob")

	privRoom := &roomModels.PrivateChatRoom{ID: uuid.New(), User1ID: alice, User2ID: bob}
	f.requests.EXPECT().ListFriendIDs(gomock.Any(), alice).Return([]string{bob}, nil)
	f.rooms.EXPECT().FindPrivateRoomByPair(gomock.Any(), alice, bob).Return(privRoom, nil)

	friends, err := f.usecase.ListFriends(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, bob, friends[0].WalletAddress)
	assert.Equal(t, "bob", friends[0].DisplayName)
	assert.Equal(t, privRoom.ID.String(), friends[0].PrivateRoomID)
}

func TestFriendUsecase_ListFriends_RoomlessEdge(t *testing.T) {
	f := newFixture(t)
	f.knowUser(alice, "alice")
	f.knowUser(bob, "bob")

	f.requests.EXPECT().ListFriendIDs(gomock.Any(), alice).Return([]string{bob}, nil)
	f.rooms.EXPECT().FindPrivateRoomByPair(gomock.Any(), alice, bob).
		Return(nil, roomRepo.ErrPrivateRoomNotFound)

	friends, err := f.usecase.ListFriends(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Empty(t, friends[0].PrivateRoomID)
}

func TestFriendUsecase_ListRequests(t *testing.T) {
	now := time.Now()

	t.Run("received lists pending with sender profiles", func(t *testing.T) {
		f := newFixture(t)
		f.knowUser(alice, "alice")

		f.requests.EXPECT().PendingReceived(gomock.Any(), bob).Return([]friendModels.FriendRequest{
			{SenderID: alice, ReceiverID: bob, Status: friendModels.StatusPending, CreatedAt: now},
		}, nil)

		reqs, err := f.usecase.ListRequests(context.Background(), bob, friend.DirectionReceived)
		require.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, alice, reqs[0].SenderID)
		assert.Equal(t, "alice", reqs[0].SenderName)
		assert.Empty(t, reqs[0].ReceiverID)
	})

	t.Run("sent lists every outgoing request", func(t *testing.T) {
		f := newFixture(t)
		f.knowUser(bob, "bob")

		f.requests.EXPECT().SentRequests(gomock.Any(), alice).Return([]friendModels.FriendRequest{
			{SenderID: alice, ReceiverID: bob, Status: friendModels.StatusRejected, CreatedAt: now},
		}, nil)

		reqs, err := f.usecase.ListRequests(context.Background(), alice, friend.DirectionSent)
		require.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, bob, reqs[0].ReceiverID)
		assert.Equal(t, friendModels.StatusRejected, reqs[0].Status)
	})
}

func TestFriendUsecase_ListPrivateChats(t *testing.T) {
	f := newFixture(t)
	f.knowUser(bob, "bob")

	privRoom := roomModels.PrivateChatRoom{ID: uuid.New(), User1ID: alice, User2ID: bob}
	f.rooms.EXPECT().ListPrivateRoomsForUser(gomock.Any(), alice).
		Return([]roomModels.PrivateChatRoom{privRoom}, nil)

	last := &msgModels.Message{
		ID:            uuid.New(),
		Content:       "see you",
		SenderID:      bob,
		PrivateRoomID: &privRoom.ID,
		Timestamp:     time.Now(),
	}
	f.msgs.EXPECT().LastMessageForPrivateRoom(gomock.Any(), privRoom.ID).Return(last, nil)

	chats, err := f.usecase.ListPrivateChats(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, bob, chats[0].UserID)
	assert.Equal(t, "bob", chats[0].DisplayName)
	require.NotNil(t, chats[0].LastMessage)
	assert.Equal(t, "see you", chats[0].LastMessage.Content)
	assert.Equal(t, "bob", chats[0].LastMessage.DisplayName)
}

func TestFriendUsecase_ListPrivateChats_EmptyChat(t *testing.T) {
	f := newFixture(t)
	f.knowUser(bob, "bob")

	privRoom := roomModels.PrivateChatRoom{ID: uuid.New(), User1ID: alice, User2ID: bob}
	f.rooms.EXPECT().ListPrivateRoomsForUser(gomock.Any(), alice).
		Return([]roomModels.PrivateChatRoom{privRoom}, nil)
	f.msgs.EXPECT().LastMessageForPrivateRoom(gomock.Any(), privRoom.ID).
		Return(nil, msgRepo.ErrMessageNotFound)

	chats, err := f.usecase.ListPrivateChats(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Nil(t, chats[0].LastMessage)
}

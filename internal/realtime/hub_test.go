package realtime

import (
	"context"
	"testing"

	"github.com/F2fX4553/polychat/internal/message"
	"github.com/F2fX4553/polychat/internal/room"
	"github.com/F2fX4553/polychat/internal/user"
	appErrors "github.com/F2fX4553/polychat/pkg/errors"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoomService struct {
	public  map[string]*room.RoomDTO
	private map[string]*room.PrivateRoomDTO
	minted  []string
}

func (f *fakeRoomService) ResolvePublic(_ context.Context, token string) (*room.RoomDTO, error) {
	if token == "" {
		return nil, appErrors.ErrDestinationRequired
	}
	if r, ok := f.public[token]; ok {
		return r, nil
	}
	r := &room.RoomDTO{ID: uuid.NewString(), Name: token}
	f.public[token] = r
	f.minted = append(f.minted, token)
	return r, nil
}

func (f *fakeRoomService) FindPublic(_ context.Context, token string) (*room.RoomDTO, error) {
	if token == "" {
		return nil, appErrors.ErrDestinationRequired
	}
	if r, ok := f.public[token]; ok {
		return r, nil
	}
	return nil, appErrors.ErrRoomNotFound
}

func (f *fakeRoomService) ResolvePrivate(_ context.Context, id string) (*room.PrivateRoomDTO, error) {
	if r, ok := f.private[id]; ok {
		return r, nil
	}
	return nil, appErrors.ErrPrivateRoomNotFound
}

func (f *fakeRoomService) ListPublicRooms(context.Context) (map[string]*room.RoomDTO, error) {
	return nil, nil
}

func (f *fakeRoomService) EnsureDefaultRooms(context.Context) error { return nil }

type fakeUserService struct{}

func (fakeUserService) GetProfile(_ context.Context, walletAddress string) (*user.UserDTO, error) {
	return &user.UserDTO{WalletAddress: walletAddress, DisplayName: "alice"}, nil
}

func (fakeUserService) UpdateProfile(context.Context, user.UpdateProfileCommand) (*user.UserDTO, error) {
	return nil, nil
}

func (fakeUserService) TouchPresence(context.Context, string, string) (*user.UserDTO, error) {
	return nil, nil
}

func (fakeUserService) SearchUsers(context.Context, string, int) ([]*user.UserDTO, error) {
	return nil, nil
}

func (fakeUserService) ListActiveUsers(context.Context) (map[string]*user.UserDTO, error) {
	return nil, nil
}

type fakeMessageService struct {
	resent []string
}

func (f *fakeMessageService) Post(context.Context, message.PostMessageCommand) (*message.MessageDTO, error) {
	return nil, nil
}

func (f *fakeMessageService) List(context.Context, message.ListMessagesQuery) ([]*message.MessageDTO, error) {
	return nil, nil
}

func (f *fakeMessageService) Delete(context.Context, string, string, bool) error { return nil }

func (f *fakeMessageService) Resend(_ context.Context, messageID string) error {
	f.resent = append(f.resent, messageID)
	return nil
}

func newTestHub() (*Hub, *fakeRoomService, *fakeMessageService) {
	rooms := &fakeRoomService{
		public:  make(map[string]*room.RoomDTO),
		private: make(map[string]*room.PrivateRoomDTO),
	}
	msgs := &fakeMessageService{}
	hub := NewHub(NewRegistry(logger.Logger{}), rooms, fakeUserService{}, msgs, logger.Logger{})
	return hub, rooms, msgs
}

func connect(h *Hub, id string) *Client {
	c := newClient(id, nil, h, logger.Logger{})
	h.registry.Register(id, c)
	return c
}

// received drains everything the write pump would have flushed so far.
func received(c *Client) []Event {
	var evs []Event
	for {
		select {
		case ev := <-c.send:
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

func TestHub_HandleFrame_Join(t *testing.T) {
	t.Run("public room acks with the room name", func(t *testing.T) {
		hub, rooms, _ := newTestHub()
		general := &room.RoomDTO{ID: uuid.NewString(), Name: "General"}
		rooms.public["General"] = general

		c := connect(hub, "conn-1")
		hub.handleFrame(c, []byte(`{"event":"join","data":{"type":"public","roomId":"General"}}`))

		assert.Equal(t, 1, hub.registry.Rooms(PublicRoomKey(general.ID)))

		evs := received(c)
		require.Len(t, evs, 1)
		assert.Equal(t, Event{
			Name: EventJoined,
			Data: JoinedPayload{Room: "General", Type: ScopePublic},
		}, evs[0])
	})

	t.Run("missing scope defaults to public", func(t *testing.T) {
		hub, rooms, _ := newTestHub()
		general := &room.RoomDTO{ID: uuid.NewString(), Name: "General"}
		rooms.public["General"] = general

		c := connect(hub, "conn-1")
		hub.handleFrame(c, []byte(`{"event":"join","data":{"roomId":"General"}}`))

		assert.Equal(t, 1, hub.registry.Rooms(PublicRoomKey(general.ID)))
	})

	t.Run("private room acks with the room id", func(t *testing.T) {
		hub, rooms, _ := newTestHub()
		privID := uuid.NewString()
		rooms.private[privID] = &room.PrivateRoomDTO{ID: privID, User1ID: "0xaaa", User2ID: "0xbbb"}

		c := connect(hub, "conn-1")
		hub.handleFrame(c, []byte(`{"event":"join","data":{"type":"private","roomId":"`+privID+`"}}`))

		assert.Equal(t, 1, hub.registry.Rooms(PrivateRoomKey(privID)))

		evs := received(c)
		require.Len(t, evs, 1)
		assert.Equal(t, JoinedPayload{Room: privID, Type: ScopePrivate}, evs[0].Data)
	})

	t.Run("user scope acks with the wallet address", func(t *testing.T) {
		hub, _, _ := newTestHub()

		c := connect(hub, "conn-1")
		hub.handleFrame(c, []byte(`{"event":"join","data":{"type":"user","roomId":"0xaaa"}}`))

		assert.Equal(t, 1, hub.registry.Rooms(UserRoomKey("0xaaa")))

		evs := received(c)
		require.Len(t, evs, 1)
		assert.Equal(t, JoinedPayload{Room: "0xaaa", Type: ScopeUser}, evs[0].Data)
	})

	t.Run("unknown private room joins nothing", func(t *testing.T) {
		hub, _, _ := newTestHub()
		privID := uuid.NewString()

		c := connect(hub, "conn-1")
		hub.handleFrame(c, []byte(`{"event":"join","data":{"type":"private","roomId":"`+privID+`"}}`))

		assert.Equal(t, 0, hub.registry.Rooms(PrivateRoomKey(privID)))
		assert.Empty(t, received(c))
	})
}

func TestHub_HandleFrame_Leave(t *testing.T) {
	t.Run("drops the membership", func(t *testing.T) {
		hub, rooms, _ := newTestHub()
		general := &room.RoomDTO{ID: uuid.NewString(), Name: "General"}
		rooms.public["General"] = general

		c := connect(hub, "conn-1")
		hub.handleFrame(c, []byte(`{"event":"join","data":{"roomId":"General"}}`))
		require.Equal(t, 1, hub.registry.Rooms(PublicRoomKey(general.ID)))

		hub.handleFrame(c, []byte(`{"event":"leave","data":{"roomId":"General"}}`))
		assert.Equal(t, 0, hub.registry.Rooms(PublicRoomKey(general.ID)))
	})

	t.Run("leaving an unknown room does not mint one", func(t *testing.T) {
		hub, rooms, _ := newTestHub()

		c := connect(hub, "conn-1")
		hub.handleFrame(c, []byte(`{"event":"leave","data":{"roomId":"never-seen"}}`))

		assert.Empty(t, rooms.minted)
	})
}

func TestHub_HandleFrame_Typing(t *testing.T) {
	setup := func(t *testing.T) (*Hub, *fakeRoomService, *room.RoomDTO, *Client, *Client) {
		hub, rooms, _ := newTestHub()
		general := &room.RoomDTO{ID: uuid.NewString(), Name: "General"}
		rooms.public["General"] = general

		c1 := connect(hub, "conn-1")
		c2 := connect(hub, "conn-2")
		hub.handleFrame(c1, []byte(`{"event":"join","data":{"roomId":"General"}}`))
		hub.handleFrame(c2, []byte(`{"event":"join","data":{"roomId":"General"}}`))
		received(c1)
		received(c2)
		return hub, rooms, general, c1, c2
	}

	t.Run("reaches the room except the typist", func(t *testing.T) {
		hub, _, _, c1, c2 := setup(t)

		hub.handleFrame(c1, []byte(`{"event":"typing","data":{"roomId":"General","userId":"0xaaa","isTyping":true}}`))

		assert.Empty(t, received(c1))

		evs := received(c2)
		require.Len(t, evs, 1)
		assert.Equal(t, EventUserTyping, evs[0].Name)
		assert.Equal(t, TypingPayload{UserID: "0xaaa", DisplayName: "alice", IsTyping: true}, evs[0].Data)
	})

	t.Run("missing userId is dropped", func(t *testing.T) {
		hub, _, _, c1, c2 := setup(t)

		hub.handleFrame(c1, []byte(`{"event":"typing","data":{"roomId":"General","isTyping":true}}`))
		assert.Empty(t, received(c2))
	})

	t.Run("unknown room emits nothing and creates nothing", func(t *testing.T) {
		hub, rooms, _, c1, c2 := setup(t)

		hub.handleFrame(c1, []byte(`{"event":"typing","data":{"roomId":"never-seen","userId":"0xaaa","isTyping":true}}`))

		assert.Empty(t, received(c2))
		assert.Empty(t, rooms.minted)
		_, stillUnknown := rooms.public["never-seen"]
		assert.False(t, stillUnknown)
	})

	t.Run("user scope is ignored", func(t *testing.T) {
		hub, _, _ := newTestHub()
		c1 := connect(hub, "conn-1")
		c2 := connect(hub, "conn-2")
		hub.handleFrame(c1, []byte(`{"event":"join","data":{"type":"user","roomId":"0xaaa"}}`))
		hub.handleFrame(c2, []byte(`{"event":"join","data":{"type":"user","roomId":"0xaaa"}}`))
		received(c1)
		received(c2)

		hub.handleFrame(c1, []byte(`{"event":"typing","data":{"type":"user","roomId":"0xaaa","userId":"0xaaa","isTyping":true}}`))
		assert.Empty(t, received(c2))
	})
}

func TestHub_HandleFrame_SendMessage(t *testing.T) {
	hub, _, msgs := newTestHub()
	c := connect(hub, "conn-1")

	msgID := uuid.NewString()
	hub.handleFrame(c, []byte(`{"event":"send_message","data":{"messageId":"`+msgID+`"}}`))

	assert.Equal(t, []string{msgID}, msgs.resent)
}

func TestHub_HandleFrame_Malformed(t *testing.T) {
	hub, rooms, msgs := newTestHub()
	c := connect(hub, "conn-1")

	frames := [][]byte{
		[]byte(`not json at all`),
		[]byte(`{"event":"join","data":"not-an-object"}`),
		[]byte(`{"event":"no_such_frame","data":{}}`),
		[]byte(`{}`),
	}
	for _, raw := range frames {
		hub.handleFrame(c, raw)
	}

	assert.Empty(t, received(c))
	assert.Empty(t, rooms.minted)
	assert.Empty(t, msgs.resent)
}

package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/F2fX4553/polychat/internal/message"
	"github.com/F2fX4553/polychat/internal/room"
	"github.com/F2fX4553/polychat/internal/user"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const frameTimeout = 10 * time.Second

// Hub upgrades websocket requests and routes inbound frames to the room
// resolver, the registry and the usecases. One hub serves all connections.
type Hub struct {
	registry *Registry
	rooms    room.RoomUsecase
	users    user.UserUsecase
	messages message.MessageUsecase
	logger   logger.Logger

	upgrader websocket.Upgrader
}

func NewHub(
	registry *Registry,
	rooms room.RoomUsecase,
	users user.UserUsecase,
	messages message.MessageUsecase,
	logger logger.Logger,
) *Hub {
	return &Hub{
		registry: registry,
		rooms:    rooms,
		users:    users,
		messages: messages,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	client := newClient(uuid.NewString(), conn, h, h.logger)
	h.registry.Register(client.id, client)
	h.logger.Debug("client connected", "conn_id", client.id, "remote", r.RemoteAddr)

	go client.writePump()
	go client.readPump()
}

// Inbound frame names.
const (
	frameJoin        = "join"
	frameLeave       = "leave"
	frameTyping      = "typing"
	frameSendMessage = "send_message"
)

type inboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type roomFrame struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
}

type typingFrame struct {
	Type     string `json:"type"`
	RoomID   string `json:"roomId"`
	UserID   string `json:"userId"`
	IsTyping bool   `json:"isTyping"`
}

type sendMessageFrame struct {
	MessageID string `json:"messageId"`
}

// handleFrame runs on the connection's read goroutine; a malformed or
// failing frame is logged and dropped without tearing the connection down.
func (h *Hub) handleFrame(c *Client, raw []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		h.logger.Warn("malformed frame", "conn_id", c.id, "err", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), frameTimeout)
	defer cancel()

	switch frame.Event {
	case frameJoin:
		h.handleJoin(ctx, c, frame.Data)
	case frameLeave:
		h.handleLeave(ctx, c, frame.Data)
	case frameTyping:
		h.handleTyping(ctx, c, frame.Data)
	case frameSendMessage:
		h.handleSendMessage(ctx, c, frame.Data)
	default:
		h.logger.Debug("ignoring unknown frame", "conn_id", c.id, "event", frame.Event)
	}
}

func (h *Hub) handleJoin(ctx context.Context, c *Client, data json.RawMessage) {
	var req roomFrame
	if err := json.Unmarshal(data, &req); err != nil {
		return
	}
	if req.Type == "" {
		req.Type = ScopePublic
	}

	switch req.Type {
	case ScopePublic:
		r, err := h.rooms.ResolvePublic(ctx, req.RoomID)
		if err != nil {
			h.logger.Warn("join failed", "conn_id", c.id, "room", req.RoomID, "err", err)
			return
		}
		h.registry.Join(c.id, PublicRoomKey(r.ID))
		h.deliverJoined(c, r.Name, ScopePublic)

	case ScopePrivate:
		r, err := h.rooms.ResolvePrivate(ctx, req.RoomID)
		if err != nil {
			h.logger.Warn("join failed", "conn_id", c.id, "private_room", req.RoomID, "err", err)
			return
		}
		h.registry.Join(c.id, PrivateRoomKey(r.ID))
		h.deliverJoined(c, r.ID, ScopePrivate)

	case ScopeUser:
		if req.RoomID == "" {
			return
		}
		h.registry.Join(c.id, UserRoomKey(req.RoomID))
		h.deliverJoined(c, req.RoomID, ScopeUser)
	}
}

func (h *Hub) deliverJoined(c *Client, roomToken, scope string) {
	ev := Event{Name: EventJoined, Data: JoinedPayload{Room: roomToken, Type: scope}}
	if err := c.Deliver(ev); err != nil {
		h.logger.Warn("dropping joined ack", "conn_id", c.id, "err", err)
	}
}

func (h *Hub) handleLeave(ctx context.Context, c *Client, data json.RawMessage) {
	var req roomFrame
	if err := json.Unmarshal(data, &req); err != nil {
		return
	}
	if req.Type == "" {
		req.Type = ScopePublic
	}

	if key, ok := h.resolveKey(ctx, req.Type, req.RoomID); ok {
		h.registry.Leave(c.id, key)
	}
}

func (h *Hub) handleTyping(ctx context.Context, c *Client, data json.RawMessage) {
	var req typingFrame
	if err := json.Unmarshal(data, &req); err != nil {
		return
	}
	if req.UserID == "" {
		return
	}
	if req.Type == "" {
		req.Type = ScopePublic
	}

	key, ok := h.resolveKey(ctx, req.Type, req.RoomID)
	if !ok || req.Type == ScopeUser {
		return
	}

	// GetProfile falls back to the derived defaults for unknown senders.
	profile, err := h.users.GetProfile(ctx, req.UserID)
	if err != nil {
		h.logger.Warn("typing lookup failed", "conn_id", c.id, "user", req.UserID, "err", err)
		return
	}

	h.registry.PublishExcept(key, Event{
		Name: EventUserTyping,
		Data: TypingPayload{
			UserID:      req.UserID,
			DisplayName: profile.DisplayName,
			IsTyping:    req.IsTyping,
		},
	}, c.id)
}

// handleSendMessage re-announces an already-persisted message to its room.
func (h *Hub) handleSendMessage(ctx context.Context, c *Client, data json.RawMessage) {
	var req sendMessageFrame
	if err := json.Unmarshal(data, &req); err != nil {
		return
	}
	if err := h.messages.Resend(ctx, req.MessageID); err != nil {
		h.logger.Warn("send_message frame failed", "conn_id", c.id, "message_id", req.MessageID, "err", err)
	}
}

// resolveKey is lookup-only: only join frames may create a public room.
func (h *Hub) resolveKey(ctx context.Context, scope, token string) (RoomKey, bool) {
	switch scope {
	case ScopePublic:
		r, err := h.rooms.FindPublic(ctx, token)
		if err != nil {
			return "", false
		}
		return PublicRoomKey(r.ID), true
	case ScopePrivate:
		r, err := h.rooms.ResolvePrivate(ctx, token)
		if err != nil {
			return "", false
		}
		return PrivateRoomKey(r.ID), true
	case ScopeUser:
		if token == "" {
			return "", false
		}
		return UserRoomKey(token), true
	default:
		return "", false
	}
}

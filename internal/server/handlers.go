package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/F2fX4553/polychat/internal/chain"
	"github.com/F2fX4553/polychat/internal/friend"
	"github.com/F2fX4553/polychat/internal/message"
	"github.com/F2fX4553/polychat/internal/room"
	"github.com/F2fX4553/polychat/internal/user"
	appErrors "github.com/F2fX4553/polychat/pkg/errors"
	"github.com/F2fX4553/polychat/pkg/logger"
)

type handler struct {
	logger   logger.Logger
	users    user.UserUsecase
	rooms    room.RoomUsecase
	messages message.MessageUsecase
	friends  friend.FriendUsecase
	chain    *chain.Provider
}

func (h *handler) listMessages(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	msgs, err := h.messages.List(r.Context(), message.ListMessagesQuery{
		Room:          r.URL.Query().Get("room"),
		PrivateRoomID: r.URL.Query().Get("privateRoom"),
		Limit:         limit,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, msgs)
}

func (h *handler) postMessage(w http.ResponseWriter, r *http.Request) {
	var cmd message.PostMessageCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.respondError(w, appErrors.InvalidArg("malformed JSON body"))
		return
	}

	msg, err := h.messages.Post(r.Context(), cmd)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, msg)
}

func (h *handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID := r.PathValue("id")
	walletAddress := r.URL.Query().Get("walletAddress")
	deleteForAll := strings.EqualFold(r.URL.Query().Get("deleteForAll"), "true")

	if err := h.messages.Delete(r.Context(), messageID, walletAddress, deleteForAll); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"messageId": messageID,
	})
}

func (h *handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.users.GetProfile(r.Context(), r.URL.Query().Get("walletAddress"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, profile)
}

func (h *handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var cmd user.UpdateProfileCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.respondError(w, appErrors.InvalidArg("malformed JSON body"))
		return
	}

	profile, err := h.users.UpdateProfile(r.Context(), cmd)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, profile)
}

func (h *handler) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.ListPublicRooms(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rooms)
}

func (h *handler) listActiveUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListActiveUsers(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, users)
}

func (h *handler) updatePresence(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WalletAddress string `json:"walletAddress"`
		Name          string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, appErrors.InvalidArg("malformed JSON body"))
		return
	}

	if _, err := h.users.TouchPresence(r.Context(), req.WalletAddress, req.Name); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (h *handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.SearchUsers(r.Context(), r.URL.Query().Get("query"), 0)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, users)
}

type friendRequestBody struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

func (h *handler) sendFriendRequest(w http.ResponseWriter, r *http.Request) {
	var req friendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, appErrors.InvalidArg("malformed JSON body"))
		return
	}

	if err := h.friends.SendRequest(r.Context(), req.SenderID, req.ReceiverID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Friend request sent",
	})
}

func (h *handler) resolveFriendRequest(w http.ResponseWriter, r *http.Request) {
	var req friendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, appErrors.InvalidArg("malformed JSON body"))
		return
	}

	action := r.PathValue("action")
	privateRoomID, err := h.friends.ResolveRequest(r.Context(), req.SenderID, req.ReceiverID, action)
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := map[string]interface{}{
		"success": true,
		"message": "Friend request " + action + "ed",
	}
	if privateRoomID != "" {
		resp["privateRoomId"] = privateRoomID
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *handler) listFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := h.friends.ListFriends(r.Context(), r.URL.Query().Get("walletAddress"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, friends)
}

func (h *handler) listFriendRequests(w http.ResponseWriter, r *http.Request) {
	direction := r.URL.Query().Get("type")
	if direction == "" {
		direction = friend.DirectionReceived
	}

	reqs, err := h.friends.ListRequests(r.Context(), r.URL.Query().Get("walletAddress"), direction)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, reqs)
}

func (h *handler) listPrivateChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.friends.ListPrivateChats(r.Context(), r.URL.Query().Get("walletAddress"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, chats)
}

func (h *handler) networkStatus(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.chain.Status(r.Context()))
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Errorf("writing response body: %v", err)
	}
}

func (h *handler) respondError(w http.ResponseWriter, err error) {
	status := statusOf(appErrors.CodeOf(err))
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "status", status, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": messageOf(err)})
}

func statusOf(code appErrors.Code) int {
	switch code {
	case appErrors.CodeInvalidArgument:
		return http.StatusBadRequest
	case appErrors.CodeNotFound:
		return http.StatusNotFound
	case appErrors.CodeAlreadyExists:
		return http.StatusConflict
	case appErrors.CodePermissionDenied:
		return http.StatusForbidden
	case appErrors.CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case appErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageOf keeps wrapped causes (driver errors and the like) out of client
// responses; only the taxonomy message crosses the boundary.
func messageOf(err error) string {
	for e := err; e != nil; {
		if app, ok := e.(*appErrors.AppError); ok {
			return app.Message
		}
		wrapped, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = wrapped.Unwrap()
	}
	return http.StatusText(http.StatusInternalServerError)
}

package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/F2fX4553/polychat/config"
	"github.com/F2fX4553/polychat/internal/chain"
	"github.com/F2fX4553/polychat/internal/friend"
	"github.com/F2fX4553/polychat/internal/message"
	"github.com/F2fX4553/polychat/internal/realtime"
	"github.com/F2fX4553/polychat/internal/room"
	"github.com/F2fX4553/polychat/internal/user"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/pkg/errors"
)

type Server struct {
	logger     logger.Logger
	httpServer *http.Server
}

type Deps struct {
	Users    user.UserUsecase
	Rooms    room.RoomUsecase
	Messages message.MessageUsecase
	Friends  friend.FriendUsecase
	Chain    *chain.Provider
	Hub      *realtime.Hub
}

func NewServer(logger logger.Logger, cfg *config.Config, deps Deps) *Server {
	h := handler{
		logger:   logger,
		users:    deps.Users,
		rooms:    deps.Rooms,
		messages: deps.Messages,
		friends:  deps.Friends,
		chain:    deps.Chain,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/messages", h.listMessages)
	mux.HandleFunc("POST /api/messages", h.postMessage)
	mux.HandleFunc("DELETE /api/messages/{id}", h.deleteMessage)
	mux.HandleFunc("GET /api/profile", h.getProfile)
	mux.HandleFunc("POST /api/profile", h.updateProfile)
	mux.HandleFunc("GET /api/rooms", h.listRooms)
	mux.HandleFunc("GET /api/users/active", h.listActiveUsers)
	mux.HandleFunc("POST /api/user/presence", h.updatePresence)
	mux.HandleFunc("GET /api/users/search", h.searchUsers)
	mux.HandleFunc("POST /api/friends/request", h.sendFriendRequest)
	mux.HandleFunc("POST /api/friends/request/{action}", h.resolveFriendRequest)
	mux.HandleFunc("GET /api/friends", h.listFriends)
	mux.HandleFunc("GET /api/friends/requests", h.listFriendRequests)
	mux.HandleFunc("GET /api/private-chats", h.listPrivateChats)
	mux.HandleFunc("GET /api/network-status", h.networkStatus)
	mux.HandleFunc("/ws", deps.Hub.ServeWS)

	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Server.Port,
			Handler: allowCORS(mux),
		},
	}
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests.
// Websocket connections are closed by process exit; clients re-join on
// reconnect since membership is never persisted.
func (s *Server) Start() error {
	idleConnsClosed := make(chan struct{})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		s.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Errorf("server shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	s.logger.Infof("starting HTTP server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "httpServer.ListenAndServe")
	}

	<-idleConnsClosed
	s.logger.Info("HTTP server stopped")
	return nil
}

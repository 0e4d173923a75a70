package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/F2fX4553/polychat/config"
	"github.com/F2fX4553/polychat/internal/chain"
	friendRepository "github.com/F2fX4553/polychat/internal/friend/repository"
	friendUsecase "github.com/F2fX4553/polychat/internal/friend/usecase"
	messageRepository "github.com/F2fX4553/polychat/internal/message/repository"
	messageUsecase "github.com/F2fX4553/polychat/internal/message/usecase"
	"github.com/F2fX4553/polychat/internal/presence"
	"github.com/F2fX4553/polychat/internal/realtime"
	roomRepository "github.com/F2fX4553/polychat/internal/room/repository"
	roomUsecase "github.com/F2fX4553/polychat/internal/room/usecase"
	"github.com/F2fX4553/polychat/internal/server"
	userRepository "github.com/F2fX4553/polychat/internal/user/repository"
	userUsecase "github.com/F2fX4553/polychat/internal/user/usecase"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("parsing config: %v", err)
	}

	lg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer lg.Sync()

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		lg.Errorf("database ping failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	userRepo := userRepository.NewCachedUserRepository(
		userRepository.NewUserRepository(db, *lg),
		rdb,
		time.Duration(cfg.Redis.TTLMinutes)*time.Minute,
		*lg,
	)
	roomRepo := roomRepository.NewRoomRepository(db, *lg)
	messageRepo := messageRepository.NewMessageRepository(db, *lg)
	friendRepo := friendRepository.NewFriendRepository(db, *lg)

	registry := realtime.NewRegistry(*lg)

	inactiveWindow := time.Duration(cfg.Presence.InactiveWindowMinutes) * time.Minute
	sweepInterval := time.Duration(cfg.Presence.SweepIntervalSeconds) * time.Second

	users := userUsecase.NewUserUsecase(userRepo, registry, *lg, inactiveWindow)
	rooms := roomUsecase.NewRoomUsecase(roomRepo, *lg)
	messages := messageUsecase.NewMessageUsecase(messageRepo, users, rooms, registry, *lg)
	friends := friendUsecase.NewFriendUsecase(friendRepo, userRepo, roomRepo, messageRepo, registry, *lg)

	if err := rooms.EnsureDefaultRooms(ctx); err != nil {
		lg.Errorf("seeding default rooms: %v", err)
	}

	tracker := presence.NewTracker(userRepo, registry, *lg, sweepInterval, inactiveWindow)
	go tracker.Run(ctx)

	hub := realtime.NewHub(registry, rooms, users, messages, *lg)

	srv := server.NewServer(*lg, cfg, server.Deps{
		Users:    users,
		Rooms:    rooms,
		Messages: messages,
		Friends:  friends,
		Chain:    chain.NewProvider(cfg.Chain.RPCURL, *lg),
		Hub:      hub,
	})
	if err := srv.Start(); err != nil {
		lg.Errorf("server exited: %v", err)
	}
}

package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/F2fX4553/polychat/internal/user"
	models "github.com/F2fX4553/polychat/internal/user/model"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// CachedUserRepository decorates a UserRepository with a redis TTL cache on
// profile reads. Writes that change profile fields invalidate the entry;
// TouchLastActive deliberately does not, so a cached profile's lastActive
// may lag by at most the TTL. Cache failures fall through to the store.
type CachedUserRepository struct {
	user.UserRepository

	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedUserRepository(inner user.UserRepository, rdb *redis.Client, ttl time.Duration, logger logger.Logger) *CachedUserRepository {
	return &CachedUserRepository{
		UserRepository: inner,
		rdb:            rdb,
		ttl:            ttl,
		logger:         logger,
	}
}

func cacheKey(walletAddress string) string {
	return "cache:user:" + walletAddress
}

func (r *CachedUserRepository) GetUser(ctx context.Context, walletAddress string) (*models.User, error) {
	if raw, err := r.rdb.Get(ctx, cacheKey(walletAddress)).Result(); err == nil {
		cached := new(models.User)
		if err := json.Unmarshal([]byte(raw), cached); err == nil {
			return cached, nil
		}
		r.logger.Warn("corrupt user cache entry, falling through", "wallet_address", walletAddress)
	}

	u, err := r.UserRepository.GetUser(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(u); err == nil {
		if err := r.rdb.Set(ctx, cacheKey(walletAddress), raw, r.ttl).Err(); err != nil {
			r.logger.Warn("failed to cache user", "wallet_address", walletAddress, "err", err)
		}
	}
	return u, nil
}

func (r *CachedUserRepository) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.UserRepository.CreateUser(ctx, u); err != nil {
		return err
	}
	r.invalidate(ctx, u.WalletAddress)
	return nil
}

func (r *CachedUserRepository) UpdateUser(ctx context.Context, u *models.User) error {
	if err := r.UserRepository.UpdateUser(ctx, u); err != nil {
		return err
	}
	r.invalidate(ctx, u.WalletAddress)
	return nil
}

func (r *CachedUserRepository) invalidate(ctx context.Context, walletAddress string) {
	if err := r.rdb.Del(ctx, cacheKey(walletAddress)).Err(); err != nil {
		r.logger.Warn("failed to invalidate user cache", "wallet_address", walletAddress, "err", err)
	}
}

package user

import (
	"context"
	"time"

	models "github.com/F2fX4553/polychat/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, walletAddress string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	TouchLastActive(ctx context.Context, walletAddress string, at time.Time) error

	SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error)

	// Activity-window queries used by the active-user listing and the
	// presence sweep respectively.
	UsersActiveSince(ctx context.Context, cutoff time.Time) ([]models.User, error)
	UsersInactiveSince(ctx context.Context, cutoff time.Time) ([]models.User, error)
}

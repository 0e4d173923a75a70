package repository

import (
	"context"
	"database/sql"
	"time"

	models "github.com/F2fX4553/polychat/internal/user/model"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db     *bun.DB
	logger logger.Logger
}

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateUser.Insert")
	}
	return nil
}

func (r *UserRepository) GetUser(ctx context.Context, walletAddress string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("wallet_address = ?", walletAddress).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUser.Scan")
	}
	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.NewUpdate().
		Model(user).
		Column("display_name", "avatar", "bio", "last_active").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateUser.Update")
	}
	return nil
}

func (r *UserRepository) TouchLastActive(ctx context.Context, walletAddress string, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("last_active = ?", at).
		Where("wallet_address = ?", walletAddress).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.TouchLastActive.Update")
	}
	return nil
}

func (r *UserRepository) SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	err := r.db.NewSelect().
		Model(&users).
		Where("wallet_address LIKE ? OR display_name LIKE ?", pattern, pattern).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.SearchUsers.Scan")
	}
	return users, nil
}

func (r *UserRepository) UsersActiveSince(ctx context.Context, cutoff time.Time) ([]models.User, error) {
	var users []models.User
	err := r.db.NewSelect().Model(&users).Where("last_active > ?", cutoff).Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.UsersActiveSince.Scan")
	}
	return users, nil
}

func (r *UserRepository) UsersInactiveSince(ctx context.Context, cutoff time.Time) ([]models.User, error) {
	var users []models.User
	err := r.db.NewSelect().Model(&users).Where("last_active < ?", cutoff).Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.UsersInactiveSince.Scan")
	}
	return users, nil
}

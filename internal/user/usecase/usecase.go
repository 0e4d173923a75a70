package usecase

import (
	"context"
	"time"

	"github.com/F2fX4553/polychat/internal/realtime"
	"github.com/F2fX4553/polychat/internal/user"
	models "github.com/F2fX4553/polychat/internal/user/model"
	"github.com/F2fX4553/polychat/internal/user/repository"
	appErrors "github.com/F2fX4553/polychat/pkg/errors"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/pkg/errors"
)

const defaultSearchLimit = 10

type UserUsecase struct {
	repo      user.UserRepository
	publisher realtime.Publisher
	logger    logger.Logger
	window    time.Duration
	now       func() time.Time
}

func NewUserUsecase(repo user.UserRepository, publisher realtime.Publisher, logger logger.Logger, inactiveWindow time.Duration) *UserUsecase {
	return &UserUsecase{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		window:    inactiveWindow,
		now:       time.Now,
	}
}

func (uc *UserUsecase) GetProfile(ctx context.Context, walletAddress string) (*user.UserDTO, error) {
	if walletAddress == "" {
		return nil, appErrors.ErrWalletRequired
	}

	u, err := uc.repo.GetUser(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Unknown addresses get the derived default profile rather than
			// an error; the row itself is created lazily on first activity.
			return &user.UserDTO{
				WalletAddress: walletAddress,
				DisplayName:   models.DefaultDisplayName(walletAddress),
				Avatar:        models.DefaultAvatar(walletAddress),
			}, nil
		}
		uc.logger.Error("failed to load profile", "wallet_address", walletAddress, "err", err)
		return nil, appErrors.ErrStoreUnavailable(err)
	}
	return toDTO(u), nil
}

func (uc *UserUsecase) UpdateProfile(ctx context.Context, cmd user.UpdateProfileCommand) (*user.UserDTO, error) {
	if cmd.WalletAddress == "" {
		return nil, appErrors.ErrWalletRequired
	}

	u, err := uc.repo.GetUser(ctx, cmd.WalletAddress)
	switch {
	case err == nil:
		if cmd.DisplayName != "" {
			u.DisplayName = cmd.DisplayName
		}
		if cmd.Avatar != "" {
			u.Avatar = cmd.Avatar
		}
		if cmd.Bio != "" {
			u.Bio = cmd.Bio
		}
		u.LastActive = uc.now()
		if err := uc.repo.UpdateUser(ctx, u); err != nil {
			uc.logger.Error("failed to update profile", "wallet_address", cmd.WalletAddress, "err", err)
			return nil, appErrors.ErrStoreUnavailable(err)
		}
	case errors.Is(err, repository.ErrUserNotFound):
		u = models.NewUser(cmd.WalletAddress, cmd.DisplayName, cmd.Avatar, cmd.Bio)
		u.LastActive = uc.now()
		if err := uc.repo.CreateUser(ctx, u); err != nil {
			uc.logger.Error("failed to create profile", "wallet_address", cmd.WalletAddress, "err", err)
			return nil, appErrors.ErrStoreUnavailable(err)
		}
	default:
		return nil, appErrors.ErrStoreUnavailable(err)
	}

	dto := toDTO(u)
	uc.publisher.Broadcast(realtime.Event{Name: realtime.EventProfileUpdated, Data: dto})
	return dto, nil
}

// TouchPresence is invoked for every inbound client activity. It creates
// the user lazily, announces first sightings with user_connected, and only
// renames when the caller explicitly supplies a new name.
func (uc *UserUsecase) TouchPresence(ctx context.Context, walletAddress, displayName string) (*user.UserDTO, error) {
	if walletAddress == "" {
		return nil, appErrors.ErrWalletRequired
	}

	u, err := uc.repo.GetUser(ctx, walletAddress)
	switch {
	case err == nil:
		u.LastActive = uc.now()
		if displayName != "" && displayName != u.DisplayName {
			u.DisplayName = displayName
			if err := uc.repo.UpdateUser(ctx, u); err != nil {
				return nil, appErrors.ErrStoreUnavailable(err)
			}
		} else if err := uc.repo.TouchLastActive(ctx, walletAddress, u.LastActive); err != nil {
			return nil, appErrors.ErrStoreUnavailable(err)
		}
		return toDTO(u), nil

	case errors.Is(err, repository.ErrUserNotFound):
		u = models.NewUser(walletAddress, displayName, "", "")
		u.LastActive = uc.now()
		if err := uc.repo.CreateUser(ctx, u); err != nil {
			return nil, appErrors.ErrStoreUnavailable(err)
		}
		uc.publisher.Broadcast(realtime.Event{
			Name: realtime.EventUserConnected,
			Data: realtime.ConnectedPayload{
				UserID: u.WalletAddress,
				Name:   u.DisplayName,
				Avatar: u.Avatar,
			},
		})
		return toDTO(u), nil

	default:
		return nil, appErrors.ErrStoreUnavailable(err)
	}
}

func (uc *UserUsecase) SearchUsers(ctx context.Context, query string, limit int) ([]*user.UserDTO, error) {
	if len(query) < 3 {
		return nil, appErrors.ErrQueryTooShort
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	users, err := uc.repo.SearchUsers(ctx, query, limit)
	if err != nil {
		uc.logger.Error("user search failed", "query", query, "err", err)
		return nil, appErrors.ErrStoreUnavailable(err)
	}

	result := make([]*user.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, toDTO(&users[i]))
	}
	return result, nil
}

func (uc *UserUsecase) ListActiveUsers(ctx context.Context) (map[string]*user.UserDTO, error) {
	cutoff := uc.now().Add(-uc.window)
	users, err := uc.repo.UsersActiveSince(ctx, cutoff)
	if err != nil {
		uc.logger.Error("active user listing failed", "err", err)
		return nil, appErrors.ErrStoreUnavailable(err)
	}

	result := make(map[string]*user.UserDTO, len(users))
	for i := range users {
		result[users[i].WalletAddress] = toDTO(&users[i])
	}
	return result, nil
}

func toDTO(u *models.User) *user.UserDTO {
	dto := &user.UserDTO{
		WalletAddress: u.WalletAddress,
		DisplayName:   u.DisplayName,
		Avatar:        u.Avatar,
		Bio:           u.Bio,
	}
	if !u.LastActive.IsZero() {
		t := u.LastActive
		dto.LastActive = &t
	}
	if !u.CreatedAt.IsZero() {
		t := u.CreatedAt
		dto.CreatedAt = &t
	}
	return dto
}

package user

import "context"

type UserUsecase interface {
	// GetProfile never fails for an unknown address: it returns the derived
	// default profile instead, matching what a client would see after the
	// user's first activity.
	GetProfile(ctx context.Context, walletAddress string) (*UserDTO, error)

	// UpdateProfile creates the user when missing and bumps last activity.
	UpdateProfile(ctx context.Context, cmd UpdateProfileCommand) (*UserDTO, error)

	// TouchPresence is the synchronous presence path: bump lastActive for
	// any inbound activity, lazily creating the user with derived defaults.
	// A non-empty displayName renames the user; an empty one never does.
	TouchPresence(ctx context.Context, walletAddress, displayName string) (*UserDTO, error)

	// SearchUsers matches the query as a substring of the wallet address or
	// display name. Queries under 3 characters are rejected.
	SearchUsers(ctx context.Context, query string, limit int) ([]*UserDTO, error)

	// ListActiveUsers returns users active within the inactivity window,
	// keyed by wallet address.
	ListActiveUsers(ctx context.Context) (map[string]*UserDTO, error)
}

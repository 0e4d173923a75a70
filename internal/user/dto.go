package user

import "time"

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
type UpdateProfileCommand struct {
	WalletAddress string
	DisplayName   string
	Avatar        string
	Bio           string
}

type UserDTO struct {
	WalletAddress string     `json:"walletAddress"`
	DisplayName   string     `json:"displayName"`
	Avatar        string     `json:"avatar"`
	Bio           string     `json:"bio"`
	LastActive    *time.Time `json:"lastActive"`
	CreatedAt     *time.Time `json:"createdAt"`
}

package domain

import "time"

// DefaultUserID is the demo profile every request falls back to when no
// userId is supplied. There is no authentication layer.
const DefaultUserID = "demo-user"

type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"displayName"`
	Bio           string    `json:"bio"`
	AvatarURL     string    `json:"avatarUrl"`
	WalletAddress string    `json:"walletAddress"`
	CreatedAt     time.Time `json:"createdAt"`
}

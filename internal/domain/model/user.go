package model

import "time"

// User is a registered account.
type User struct {
	Username       string
	HashedPassword string
	Disabled       bool
	CreatedAt      time.Time
}

// Token is the bearer credential handed out on login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

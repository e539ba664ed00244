package models

// User is an account in the fixed user registry.
type User struct {
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
}

// Token is the body returned by a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

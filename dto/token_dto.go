package dto

// TokenRequest is the payload for POST /auth/token. The same fields are also
// accepted form-encoded.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenDTO is the bearer token response.
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

package models

// User is the authenticated account. The client holds a read-only cached
// copy fetched after login; the backend owns the record.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Token is the ephemeral result of a login. It lives only in the session
// and the credential store.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the payload for POST /auth/login/json.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

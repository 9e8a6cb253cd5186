package session

// LoginInput holds the validated login payload.
type LoginInput struct {
	Username  string
	Email     string
	Avatar    string
	AuthToken string
}

// UpdateUserInput holds optional mutation values for the session user. A nil
// field leaves the current value untouched; a pointer to an empty string
// clears it.
type UpdateUserInput struct {
	Username  *string
	Email     *string
	Avatar    *string
	AuthToken *string
}

// UserDTO is the session user payload returned to clients.
type UserDTO struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	AuthToken string `json:"auth_token"`
}

// SessionDTO is the session state payload. User is present only when
// logged in.
type SessionDTO struct {
	LoggedIn bool     `json:"logged_in"`
	User     *UserDTO `json:"user,omitempty"`
}

package account

// Error message constants for account operations.
const (
	ErrMsgLoginFailed      = "Login failed."
	ErrMsgUsernameRequired = "Username cannot be empty."
	ErrMsgPasswordRequired = "Password cannot be empty."
	ErrMsgUsernameTakenf   = "Username %q is already taken."
	ErrMsgCannotDelete     = "User not found or cannot delete admin."
)

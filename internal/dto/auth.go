package dto

// SignUpRequest carries new-account credentials.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest carries login credentials.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse returns both token kinds on successful login.
type SignInResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse returns a freshly minted access token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// ForgotPasswordRequest starts the password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the password reset flow.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// MessageResponse is the generic {msg} body used by the auth endpoints.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

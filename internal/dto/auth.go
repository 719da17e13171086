package dto

// RegisterInput — тело POST /auth/register. The 8-character minimum is
// the same policy the original service enforced.
type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileResponse never carries the password or its hash.
type ProfileResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

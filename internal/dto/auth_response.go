package dto

// UserResponse is the public profile. The password hash never leaves the
// service layer.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

package dto

// SignupRequest is the payload of POST /auth/signup. Location must be in the
// Michigan-city allow-list (custom `micity` binding tag).
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required,micity"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the payload of PUT /users/me. Pointer fields
// distinguish "absent" from "set to empty".
type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Location   *string `json:"location,omitempty"`
	ProfilePic *string `json:"profilePic,omitempty"`
}

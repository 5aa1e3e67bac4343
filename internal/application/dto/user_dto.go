package dto

import "time"

// SignupRequest input for account creation (password is hashed in the use case).
type SignupRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// SignupResponse output of signup: id and email only, never the credential.
type SignupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginRequest input for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse output with the JWT and the user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest partial update of the personal profile.
type UpdateProfileRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	PhoneNumber    *string `json:"phone_number"`
	DateOfBirth    *string `json:"date_of_birth"`
	Gender         *string `json:"gender"`
	ProfilePicture *string `json:"profile_picture"`
	IdentityDoc    *string `json:"identity_document"`
}

// UserResponse a user decorated with the derived completion and state so
// clients never recompute eligibility rules.
type UserResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	DateOfBirth    string    `json:"date_of_birth,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	IdentityDoc    string    `json:"identity_document,omitempty"`
	EmailVerified  bool      `json:"email_verified"`
	Verified       bool      `json:"verified"`
	Admin          bool      `json:"admin,omitempty"`
	BusinessCount  int       `json:"business_count"`
	Completion     int       `json:"completion"`
	State          string    `json:"state"` // incomplete | awaiting | verified
	MissingFields  []string  `json:"missing_fields,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

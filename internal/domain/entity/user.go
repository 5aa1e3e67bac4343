package entity

import "time"

// User represents a natural person account on the portal.
//
// EmailVerified and Verified are distinct: the first proves possession of the
// email address via a single-use token, the second is an administrator's
// attestation that the profile is authentic. Only an admin flips Verified.
type User struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string // bcrypt hash, never plaintext past signup
	ProfilePicture string // opaque blob reference
	DateOfBirth    string // opaque, non-empty means filled
	Gender         string
	PhoneNumber    string
	IdentityDoc    string // opaque blob reference to the identity document
	EmailVerified  bool
	Verified       bool // admin attestation, independent of business state
	Admin          bool
	BusinessCount  int // denormalized, maintained on business create/delete
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

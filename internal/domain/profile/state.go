package profile

import "github.com/msmepassport/msme-passport-api/internal/domain/entity"

// User verification states.
const (
	UserIncomplete = "incomplete" // personal profile below 100%
	UserAwaiting   = "awaiting"   // 100% filled, waiting on an admin
	UserVerified   = "verified"
)

// Business verification states. The display status is always derived here;
// Verified/Rejected/PaymentStatus are the only stored state.
const (
	BusinessIncomplete = "incomplete"
	BusinessPending    = "pending" // >= 99% complete, ready for admin review
	BusinessVerified   = "verified"
	BusinessRejected   = "rejected"
)

// UserState derives the verification state of a user. There is no automatic
// promotion to verified: an admin action is required even at 100% completion.
func UserState(u *entity.User) string {
	if u.Verified {
		return UserVerified
	}
	if UserCompletion(u) == 100 {
		return UserAwaiting
	}
	return UserIncomplete
}

// BusinessState derives the verification state of a business. Rejected wins
// over everything; verified over pending; pending means complete enough to
// submit (>= 99%).
func BusinessState(b *entity.Business) string {
	switch {
	case b.Rejected:
		return BusinessRejected
	case b.Verified:
		return BusinessVerified
	case BusinessCompletion(b) >= 99:
		return BusinessPending
	default:
		return BusinessIncomplete
	}
}

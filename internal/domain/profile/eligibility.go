package profile

import (
	"fmt"
	"strings"

	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
)

// Machine-readable eligibility codes returned alongside human messages so
// client UIs can branch without recomputing rules.
const (
	CodeProfileIncomplete    = "PROFILE_INCOMPLETE"
	CodeAwaitingVerification = "AWAITING_VERIFICATION"
	CodeBusinessRejected     = "BUSINESS_REJECTED"
	CodeNotVerified          = "NOT_VERIFIED"
	CodeAlreadyVerified      = "ALREADY_VERIFIED"
	CodePaymentPending       = "PAYMENT_PENDING"
	CodeFieldsIncomplete     = "FIELDS_INCOMPLETE"
)

// Decision is the outcome of an eligibility check: a verdict plus everything
// a client needs to explain a refusal to the end user.
type Decision struct {
	Eligible      bool
	Code          string // empty when eligible
	Reason        string // human-readable, empty when eligible
	Completion    int
	MissingFields []string
}

// CanUserCreateBusinesses reports whether a user may create business profiles:
// admin-verified and a 100% complete personal profile.
func CanUserCreateBusinesses(u *entity.User) bool {
	return u.Verified && UserCompletion(u) == 100
}

// UserCreateBusinessDecision explains the create-business gate. Three cases:
// profile incomplete (lists missing fields), complete but awaiting admin
// verification, or eligible.
func UserCreateBusinessDecision(u *entity.User) Decision {
	completion := UserCompletion(u)
	if completion < 100 {
		missing := UserMissingFields(u)
		return Decision{
			Code:          CodeProfileIncomplete,
			Reason:        fmt.Sprintf("Your profile is %d%% complete. Please fill in: %s.", completion, strings.Join(missing, ", ")),
			Completion:    completion,
			MissingFields: missing,
		}
	}
	if !u.Verified {
		return Decision{
			Code:       CodeAwaitingVerification,
			Reason:     "Your profile is complete and awaiting verification by an administrator.",
			Completion: completion,
		}
	}
	return Decision{Eligible: true, Completion: completion}
}

// IsEligibleForVerification is the business-side gate for submitting to admin
// review: not rejected, not already verified, and at least 99% complete.
func IsEligibleForVerification(b *entity.Business) bool {
	return !b.Rejected && !b.Verified && BusinessCompletion(b) >= 99
}

// CanAddCollaborators reports whether a business may invite co-managers.
// Stricter than verification: payment must be settled and every required
// field must still be filled at decision time.
func CanAddCollaborators(b *entity.Business) bool {
	return !b.Rejected &&
		b.Verified &&
		b.PaymentStatus == entity.PaymentPaid &&
		BusinessFieldsComplete(b)
}

// AddCollaboratorsDecision explains the collaboration gate, first failure wins.
func AddCollaboratorsDecision(b *entity.Business) Decision {
	completion := BusinessCompletion(b)
	switch {
	case b.Rejected:
		return Decision{
			Code:       CodeBusinessRejected,
			Reason:     "This business was rejected and cannot add collaborators.",
			Completion: completion,
		}
	case !b.Verified:
		return Decision{
			Code:       CodeNotVerified,
			Reason:     "The business must be verified before adding collaborators.",
			Completion: completion,
		}
	case b.PaymentStatus != entity.PaymentPaid:
		return Decision{
			Code:       CodePaymentPending,
			Reason:     "Payment must be completed before adding collaborators.",
			Completion: completion,
		}
	case !BusinessFieldsComplete(b):
		missing := BusinessMissingFields(b)
		return Decision{
			Code:          CodeFieldsIncomplete,
			Reason:        fmt.Sprintf("All required fields must be filled. Missing: %s.", strings.Join(missing, ", ")),
			Completion:    completion,
			MissingFields: missing,
		}
	}
	return Decision{Eligible: true, Completion: completion}
}

// VerificationDecision explains the submit-for-verification gate.
func VerificationDecision(b *entity.Business) Decision {
	completion := BusinessCompletion(b)
	switch {
	case b.Rejected:
		return Decision{
			Code:       CodeBusinessRejected,
			Reason:     "This business was rejected. Review the reason, update the profile and contact an administrator.",
			Completion: completion,
		}
	case b.Verified:
		return Decision{Eligible: false, Code: CodeAlreadyVerified, Reason: "The business is already verified.", Completion: completion}
	case completion < 99:
		missing := BusinessMissingFields(b)
		return Decision{
			Code:          CodeProfileIncomplete,
			Reason:        fmt.Sprintf("The business profile is %d%% complete. Please fill in: %s.", completion, strings.Join(missing, ", ")),
			Completion:    completion,
			MissingFields: missing,
		}
	}
	return Decision{Eligible: true, Completion: completion}
}

package profile_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/profile"
)

// ──────────────────────────────────────────────────────────────────────────────
// User gate: can create businesses
// ──────────────────────────────────────────────────────────────────────────────

func TestCanUserCreateBusinesses_VerifiedAndComplete(t *testing.T) {
	u := fullUser()
	u.Verified = true
	assert.True(t, profile.CanUserCreateBusinesses(u))

	d := profile.UserCreateBusinessDecision(u)
	assert.True(t, d.Eligible)
	assert.Empty(t, d.Code)
	assert.Equal(t, 100, d.Completion)
}

func TestCanUserCreateBusinesses_IncompleteProfile_ListsMissingField(t *testing.T) {
	u := fullUser()
	u.DateOfBirth = ""
	u.Verified = false
	assert.False(t, profile.CanUserCreateBusinesses(u))

	d := profile.UserCreateBusinessDecision(u)
	require.False(t, d.Eligible)
	assert.Equal(t, profile.CodeProfileIncomplete, d.Code)
	assert.Equal(t, 86, d.Completion)
	assert.Equal(t, []string{"Date of Birth"}, d.MissingFields)
	assert.Contains(t, d.Reason, "Date of Birth")
}

func TestCanUserCreateBusinesses_CompleteButUnverified_Awaiting(t *testing.T) {
	u := fullUser()
	u.Verified = false
	assert.False(t, profile.CanUserCreateBusinesses(u))

	d := profile.UserCreateBusinessDecision(u)
	assert.Equal(t, profile.CodeAwaitingVerification, d.Code)
	assert.Empty(t, d.MissingFields)
}

func TestCanUserCreateBusinesses_VerifiedButIncomplete_NotEligible(t *testing.T) {
	// An admin can in principle verify an incomplete profile; the gate still
	// requires 100% completion independently of the verified flag.
	u := fullUser()
	u.Gender = ""
	u.Verified = true
	assert.False(t, profile.CanUserCreateBusinesses(u))
}

// ──────────────────────────────────────────────────────────────────────────────
// Business gate: eligible for verification
// ──────────────────────────────────────────────────────────────────────────────

func TestIsEligibleForVerification_CompleteUnverified(t *testing.T) {
	b := fullBusiness()
	assert.True(t, profile.IsEligibleForVerification(b))
}

func TestIsEligibleForVerification_MissingTagline(t *testing.T) {
	b := fullBusiness()
	b.Tagline = ""
	assert.False(t, profile.IsEligibleForVerification(b))

	d := profile.VerificationDecision(b)
	assert.Equal(t, profile.CodeProfileIncomplete, d.Code)
	assert.Equal(t, 92, d.Completion)
	assert.Contains(t, d.MissingFields, "Tagline")
}

func TestIsEligibleForVerification_AlreadyVerified(t *testing.T) {
	b := fullBusiness()
	b.Verified = true
	assert.False(t, profile.IsEligibleForVerification(b))
	assert.Equal(t, profile.CodeAlreadyVerified, profile.VerificationDecision(b).Code)
}

func TestIsEligibleForVerification_Rejected(t *testing.T) {
	b := fullBusiness()
	b.Rejected = true
	assert.False(t, profile.IsEligibleForVerification(b))
	assert.Equal(t, profile.CodeBusinessRejected, profile.VerificationDecision(b).Code)
}

// TestIsEligibleForVerification_Property exhaustively checks the gate
// definition over every field-presence combination and flag pair:
// eligible iff !rejected && !verified && completion >= 99.
func TestIsEligibleForVerification_Property(t *testing.T) {
	full := fullBusiness()
	for mask := 0; mask < 1<<len(businessFieldLabels); mask++ {
		for _, rejected := range []bool{false, true} {
			for _, verified := range []bool{false, true} {
				b := &entity.Business{PaymentStatus: entity.PaymentPending, Rejected: rejected, Verified: verified}
				for i, label := range businessFieldLabels {
					if mask&(1<<i) != 0 {
						fillBusinessField(b, full, label)
					}
				}
				want := !rejected && !verified && profile.BusinessCompletion(b) >= 99
				got := profile.IsEligibleForVerification(b)
				if got != want {
					t.Fatalf("mask=%012b rejected=%v verified=%v: got %v want %v", mask, rejected, verified, got, want)
				}
			}
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Business gate: can add collaborators
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAddCollaborators_VerifiedPaidComplete(t *testing.T) {
	b := fullBusiness()
	b.Verified = true
	b.PaymentStatus = entity.PaymentPaid
	assert.True(t, profile.CanAddCollaborators(b))
	assert.True(t, profile.AddCollaboratorsDecision(b).Eligible)
}

func TestCanAddCollaborators_UnpaidBlocks(t *testing.T) {
	b := fullBusiness()
	b.Verified = true
	assert.False(t, profile.CanAddCollaborators(b))
	assert.Equal(t, profile.CodePaymentPending, profile.AddCollaboratorsDecision(b).Code)
}

func TestCanAddCollaborators_UnverifiedBlocks(t *testing.T) {
	b := fullBusiness()
	b.PaymentStatus = entity.PaymentPaid
	assert.False(t, profile.CanAddCollaborators(b))
	assert.Equal(t, profile.CodeNotVerified, profile.AddCollaboratorsDecision(b).Code)
}

func TestCanAddCollaborators_FieldClearedAfterVerification_Blocks(t *testing.T) {
	// The collaboration gate re-checks all 12 fields even though verification
	// already required >= 99%: a field cleared after verification closes it.
	b := fullBusiness()
	b.Verified = true
	b.PaymentStatus = entity.PaymentPaid
	b.Website = "https://mensahtextiles.com" // not on the checklist, irrelevant
	b.Tagline = ""
	assert.False(t, profile.CanAddCollaborators(b))

	d := profile.AddCollaboratorsDecision(b)
	assert.Equal(t, profile.CodeFieldsIncomplete, d.Code)
	assert.Equal(t, []string{"Tagline"}, d.MissingFields)
}

func TestCanAddCollaborators_RejectedBlocks(t *testing.T) {
	b := fullBusiness()
	b.Verified = true
	b.PaymentStatus = entity.PaymentPaid
	b.Rejected = true
	assert.False(t, profile.CanAddCollaborators(b))
	assert.Equal(t, profile.CodeBusinessRejected, profile.AddCollaboratorsDecision(b).Code)
}

// TestCollaborationGate_StrictlyAboveVerificationGate: any business passing
// the collaboration gate is verified, and verified is only reachable through
// the verification gate, so collaboration is never reachable without it.
func TestCollaborationGate_StrictlyAboveVerificationGate(t *testing.T) {
	full := fullBusiness()
	for mask := 0; mask < 1<<len(businessFieldLabels); mask++ {
		b := &entity.Business{PaymentStatus: entity.PaymentPaid, Verified: true}
		for i, label := range businessFieldLabels {
			if mask&(1<<i) != 0 {
				fillBusinessField(b, full, label)
			}
		}
		if profile.CanAddCollaborators(b) {
			// Rewind to the pre-verification state: the gate must have been open.
			pre := *b
			pre.Verified = false
			pre.PaymentStatus = entity.PaymentPending
			require.True(t, profile.IsEligibleForVerification(&pre),
				fmt.Sprintf("mask=%012b: collaborators allowed but verification gate was never passable", mask))
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Derived states
// ──────────────────────────────────────────────────────────────────────────────

func TestUserState_Progression(t *testing.T) {
	u := &entity.User{}
	assert.Equal(t, profile.UserIncomplete, profile.UserState(u))

	u = fullUser()
	assert.Equal(t, profile.UserAwaiting, profile.UserState(u))

	u.Verified = true
	assert.Equal(t, profile.UserVerified, profile.UserState(u))

	// Admin unverify moves back to awaiting, not incomplete.
	u.Verified = false
	assert.Equal(t, profile.UserAwaiting, profile.UserState(u))
}

func TestBusinessState_Progression(t *testing.T) {
	b := &entity.Business{PaymentStatus: entity.PaymentPending}
	assert.Equal(t, profile.BusinessIncomplete, profile.BusinessState(b))

	b = fullBusiness()
	assert.Equal(t, profile.BusinessPending, profile.BusinessState(b))

	b.Verified = true
	assert.Equal(t, profile.BusinessVerified, profile.BusinessState(b))

	b.Rejected = true
	b.Verified = false
	assert.Equal(t, profile.BusinessRejected, profile.BusinessState(b))
}

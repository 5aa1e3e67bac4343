package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msmepassport/msme-passport-api/internal/application/dto"
	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/profile"
)

func TestVerifyBusiness_CompleteBusiness(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "u1", "amina@example.com")
	e.seedBusiness(t, "b1", "u1")

	resp, err := e.admin.VerifyBusiness("b1", dto.VerifyBusinessRequest{Verified: true})
	require.NoError(t, err)
	assert.True(t, resp.Verified)
	assert.Equal(t, entity.PaymentPaid, resp.PaymentStatus) // defaults to paid on verify
	assert.Equal(t, 100, resp.Completion)
	assert.Equal(t, profile.BusinessVerified, resp.State)
}

func TestVerifyBusiness_StaleCompletionRefused(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "u1", "amina@example.com")
	e.seedBusiness(t, "b1", "u1", func(b *entity.Business) { b.Tagline = "" })

	_, err := e.admin.VerifyBusiness("b1", dto.VerifyBusinessRequest{Verified: true})
	var eligErr *usecase.EligibilityError
	require.ErrorAs(t, err, &eligErr)
	assert.Equal(t, profile.CodeProfileIncomplete, eligErr.Decision.Code)
	assert.Contains(t, eligErr.Decision.MissingFields, "Tagline")

	b := e.getBusiness(t, "b1")
	assert.False(t, b.Verified)
}

func TestVerifyBusiness_RejectedBusinessRefused(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "u1", "amina@example.com")
	e.seedBusiness(t, "b1", "u1", func(b *entity.Business) {
		b.Rejected = true
		b.RejectionReason = "expired license"
	})

	_, err := e.admin.VerifyBusiness("b1", dto.VerifyBusinessRequest{Verified: true})
	assert.ErrorIs(t, err, domain.ErrBusinessRejected)
}

func TestVerifyBusiness_UnverifyResetsPayment(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "u1", "amina@example.com")
	e.seedBusiness(t, "b1", "u1", func(b *entity.Business) {
		b.Verified = true
		b.PaymentStatus = entity.PaymentPaid
	})

	resp, err := e.admin.VerifyBusiness("b1", dto.VerifyBusinessRequest{Verified: false})
	require.NoError(t, err)
	assert.False(t, resp.Verified)
	assert.Equal(t, entity.PaymentPending, resp.PaymentStatus)
	assert.Equal(t, 99, resp.Completion)
}

func TestSetRejection_RequiresReason(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "u1", "amina@example.com")
	e.seedBusiness(t, "b1", "u1")

	_, err := e.admin.SetRejection("b1", dto.RejectBusinessRequest{Rejected: true})
	assert.ErrorIs(t, err, domain.ErrRejectionReason)

	b := e.getBusiness(t, "b1")
	assert.False(t, b.Rejected)
}

func TestSetRejection_ClearsVerified(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "u1", "amina@example.com")
	e.seedBusiness(t, "b1", "u1", func(b *entity.Business) {
		b.Verified = true
		b.PaymentStatus = entity.PaymentPaid
	})

	resp, err := e.admin.SetRejection("b1", dto.RejectBusinessRequest{Rejected: true, Reason: "forged certificate"})
	require.NoError(t, err)
	assert.True(t, resp.Rejected)
	assert.False(t, resp.Verified)
	assert.Equal(t, "forged certificate", resp.RejectionReason)
	assert.Equal(t, 0, resp.Completion)
	assert.Equal(t, profile.BusinessRejected, resp.State)
}

func TestSetRejection_ClearReopensVerifyGate(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "u1", "amina@example.com")
	e.seedBusiness(t, "b1", "u1", func(b *entity.Business) {
		b.Rejected = true
		b.RejectionReason = "expired license"
	})

	resp, err := e.admin.SetRejection("b1", dto.RejectBusinessRequest{Rejected: false})
	require.NoError(t, err)
	assert.False(t, resp.Rejected)
	assert.Empty(t, resp.RejectionReason)
	assert.False(t, resp.Verified) // un-reject grants nothing else

	// The business can be verified again now.
	verified, err := e.admin.VerifyBusiness("b1", dto.VerifyBusinessRequest{Verified: true})
	require.NoError(t, err)
	assert.True(t, verified.Verified)
}

func TestSetUserVerified_Roundtrip(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "u1", "amina@example.com", func(u *entity.User) { u.Verified = false })

	resp, err := e.admin.SetUserVerified("u1", true)
	require.NoError(t, err)
	assert.True(t, resp.Verified)
	assert.Equal(t, profile.UserVerified, resp.State)

	resp, err = e.admin.SetUserVerified("u1", false)
	require.NoError(t, err)
	assert.False(t, resp.Verified)
}

func TestSetUserVerified_UnknownUser(t *testing.T) {
	e := newEnv(t)
	_, err := e.admin.SetUserVerified("nobody", true)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListBusinessesUnderReview_FiltersResolved(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "u1", "amina@example.com")
	e.seedBusiness(t, "b1", "u1")
	e.seedBusiness(t, "b2", "u1", func(b *entity.Business) { b.Verified = true })
	e.seedBusiness(t, "b3", "u1", func(b *entity.Business) {
		b.Rejected = true
		b.RejectionReason = "dup"
	})

	resp, err := e.admin.ListBusinessesUnderReview(50, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "b1", resp.Items[0].ID)
}

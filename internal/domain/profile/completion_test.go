package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/profile"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test fixtures
// ──────────────────────────────────────────────────────────────────────────────

// fullUser returns a user with all 7 required personal fields filled.
func fullUser() *entity.User {
	return &entity.User{
		ID:          "user-1",
		FirstName:   "Ama",
		LastName:    "Mensah",
		Email:       "ama@example.com",
		PhoneNumber: "+233201234567",
		DateOfBirth: "1990-04-12",
		Gender:      "female",
		IdentityDoc: "uploads/id/ama.png",
	}
}

// fullBusiness returns a business with all 12 required fields filled,
// unverified, unrejected, payment pending.
func fullBusiness() *entity.Business {
	return &entity.Business{
		ID:                 "b-12345678",
		UserID:             "user-1",
		Name:               "Mensah Textiles",
		Email:              "info@mensahtextiles.com",
		RegistrationNumber: "REG-2020-1187",
		YearEstablished:    "2015",
		OwnerName:          "Ama Mensah, Kofi Mensah",
		Category:           "Manufacturing",
		EmployeeCount:      "6-20",
		ChamberID:          "chamber-accra",
		Tagline:            "Quality fabrics since 2015",
		Address:            "12 Ring Road, Accra",
		PhoneNumber:        "+233302765432",
		LicenseDocuments:   []string{"uploads/docs/license.pdf"},
		PaymentStatus:      entity.PaymentPending,
	}
}

// clearBusinessField empties the checklist field with the given label.
// Kept in sync with the declaration order of the business checklist.
func clearBusinessField(b *entity.Business, label string) {
	switch label {
	case "Business Name":
		b.Name = ""
	case "Business Email":
		b.Email = ""
	case "Registration Number":
		b.RegistrationNumber = ""
	case "Year Established":
		b.YearEstablished = ""
	case "Owner Name":
		b.OwnerName = ""
	case "Category":
		b.Category = ""
	case "Employee Count":
		b.EmployeeCount = ""
	case "Chamber":
		b.ChamberID = ""
	case "Tagline":
		b.Tagline = ""
	case "Address":
		b.Address = ""
	case "Phone Number":
		b.PhoneNumber = ""
	case "Business Document":
		b.LicenseDocuments = nil
	}
}

var businessFieldLabels = []string{
	"Business Name", "Business Email", "Registration Number", "Year Established",
	"Owner Name", "Category", "Employee Count", "Chamber", "Tagline",
	"Address", "Phone Number", "Business Document",
}

// ──────────────────────────────────────────────────────────────────────────────
// User completion
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCompletion_AllFieldsFilled_Is100(t *testing.T) {
	assert.Equal(t, 100, profile.UserCompletion(fullUser()))
	assert.Empty(t, profile.UserMissingFields(fullUser()))
}

func TestUserCompletion_SixOfSeven_RoundsHalfUp(t *testing.T) {
	u := fullUser()
	u.Gender = ""
	// round(100 * 6/7) = round(85.71) = 86
	assert.Equal(t, 86, profile.UserCompletion(u))
}

func TestUserCompletion_EmptyUser_IsZero(t *testing.T) {
	u := &entity.User{}
	assert.Equal(t, 0, profile.UserCompletion(u))
	assert.Len(t, profile.UserMissingFields(u), 7)
}

func TestUserMissingFields_DeclarationOrder(t *testing.T) {
	u := fullUser()
	u.IdentityDoc = ""
	u.FirstName = ""
	// Order follows the checklist declaration, not the order of clearing.
	assert.Equal(t, []string{"First Name", "Identity Document"}, profile.UserMissingFields(u))
}

// ──────────────────────────────────────────────────────────────────────────────
// Business completion
// ──────────────────────────────────────────────────────────────────────────────

func TestBusinessCompletion_AllFilled_CappedAt99(t *testing.T) {
	b := fullBusiness()
	// 12/12 fields filled but unverified: capped at 99, never 100.
	assert.Equal(t, 99, profile.BusinessCompletion(b))
}

func TestBusinessCompletion_MissingTagline_Is92(t *testing.T) {
	b := fullBusiness()
	b.Tagline = ""
	// round(100 * 11/12) = 92
	assert.Equal(t, 92, profile.BusinessCompletion(b))
	assert.Equal(t, []string{"Tagline"}, profile.BusinessMissingFields(b))
}

func TestBusinessCompletion_VerifiedAndPaid_Forces100(t *testing.T) {
	b := fullBusiness()
	b.Verified = true
	b.PaymentStatus = entity.PaymentPaid
	assert.Equal(t, 100, profile.BusinessCompletion(b))
}

func TestBusinessCompletion_VerifiedButUnpaid_StaysCapped(t *testing.T) {
	b := fullBusiness()
	b.Verified = true
	b.PaymentStatus = entity.PaymentPending
	// Verified-but-unpaid is a valid intermediate state; the 100 is only
	// granted when both verification and payment are settled.
	assert.Equal(t, 99, profile.BusinessCompletion(b))
}

func TestBusinessCompletion_Rejected_ForcesZero(t *testing.T) {
	b := fullBusiness()
	b.Rejected = true
	assert.Equal(t, 0, profile.BusinessCompletion(b))
}

func TestBusinessCompletion_RejectedBeatsVerifiedPaid(t *testing.T) {
	b := fullBusiness()
	b.Verified = true
	b.PaymentStatus = entity.PaymentPaid
	b.Rejected = true
	assert.Equal(t, 0, profile.BusinessCompletion(b))
}

func TestBusinessCompletion_EmptyDocumentRef_NotCounted(t *testing.T) {
	b := fullBusiness()
	b.LicenseDocuments = []string{""}
	// A present-but-empty first element does not satisfy the document check.
	assert.Contains(t, profile.BusinessMissingFields(b), "Business Document")
}

// TestBusinessCompletion_Monotonic fills fields one by one and requires the
// percentage to never decrease, then clears them and requires it to never
// increase.
func TestBusinessCompletion_Monotonic(t *testing.T) {
	empty := &entity.Business{PaymentStatus: entity.PaymentPending}
	full := fullBusiness()

	prev := profile.BusinessCompletion(empty)
	b := &entity.Business{PaymentStatus: entity.PaymentPending}
	for _, label := range businessFieldLabels {
		fillBusinessField(b, full, label)
		cur := profile.BusinessCompletion(b)
		require.GreaterOrEqual(t, cur, prev, "filling %q must not decrease completion", label)
		prev = cur
	}
	require.Equal(t, 99, prev)

	for _, label := range businessFieldLabels {
		clearBusinessField(b, label)
		cur := profile.BusinessCompletion(b)
		require.LessOrEqual(t, cur, prev, "clearing %q must not increase completion", label)
		prev = cur
	}
	require.Equal(t, 0, prev)
}

// fillBusinessField copies one checklist field from src to dst.
func fillBusinessField(dst, src *entity.Business, label string) {
	switch label {
	case "Business Name":
		dst.Name = src.Name
	case "Business Email":
		dst.Email = src.Email
	case "Registration Number":
		dst.RegistrationNumber = src.RegistrationNumber
	case "Year Established":
		dst.YearEstablished = src.YearEstablished
	case "Owner Name":
		dst.OwnerName = src.OwnerName
	case "Category":
		dst.Category = src.Category
	case "Employee Count":
		dst.EmployeeCount = src.EmployeeCount
	case "Chamber":
		dst.ChamberID = src.ChamberID
	case "Tagline":
		dst.Tagline = src.Tagline
	case "Address":
		dst.Address = src.Address
	case "Phone Number":
		dst.PhoneNumber = src.PhoneNumber
	case "Business Document":
		dst.LicenseDocuments = src.LicenseDocuments
	}
}

// Package profile holds the pure business rules of the portal: the completion
// calculator, the eligibility engine and the derived verification states.
// Every call site (handlers, use cases, admin surface) goes through this one
// package so percentages and gates can never drift apart.
package profile

import "github.com/msmepassport/msme-passport-api/internal/domain/entity"

// checklistItem is one required field: a display label and its fill predicate.
type userChecklistItem struct {
	Label  string
	Filled func(u *entity.User) bool
}

type businessChecklistItem struct {
	Label  string
	Filled func(b *entity.Business) bool
}

// userChecklist is the fixed 7-field personal checklist, in display order.
var userChecklist = []userChecklistItem{
	{"First Name", func(u *entity.User) bool { return u.FirstName != "" }},
	{"Last Name", func(u *entity.User) bool { return u.LastName != "" }},
	{"Email", func(u *entity.User) bool { return u.Email != "" }},
	{"Phone Number", func(u *entity.User) bool { return u.PhoneNumber != "" }},
	{"Date of Birth", func(u *entity.User) bool { return u.DateOfBirth != "" }},
	{"Gender", func(u *entity.User) bool { return u.Gender != "" }},
	{"Identity Document", func(u *entity.User) bool { return u.IdentityDoc != "" }},
}

// businessChecklist is the fixed 12-field business checklist, in display order.
// The document item counts the business license / ID card category.
var businessChecklist = []businessChecklistItem{
	{"Business Name", func(b *entity.Business) bool { return b.Name != "" }},
	{"Business Email", func(b *entity.Business) bool { return b.Email != "" }},
	{"Registration Number", func(b *entity.Business) bool { return b.RegistrationNumber != "" }},
	{"Year Established", func(b *entity.Business) bool { return b.YearEstablished != "" }},
	{"Owner Name", func(b *entity.Business) bool { return b.OwnerName != "" }},
	{"Category", func(b *entity.Business) bool { return b.Category != "" }},
	{"Employee Count", func(b *entity.Business) bool { return b.EmployeeCount != "" }},
	{"Chamber", func(b *entity.Business) bool { return b.ChamberID != "" }},
	{"Tagline", func(b *entity.Business) bool { return b.Tagline != "" }},
	{"Address", func(b *entity.Business) bool { return b.Address != "" }},
	{"Phone Number", func(b *entity.Business) bool { return b.PhoneNumber != "" }},
	{"Business Document", func(b *entity.Business) bool {
		return len(b.LicenseDocuments) > 0 && b.LicenseDocuments[0] != ""
	}},
}

// percent computes round-half-up(100 * filled / total) as an integer.
func percent(filled, total int) int {
	return (100*filled + total/2) / total
}

// UserCompletion returns the 0-100 completion percentage of the personal
// profile over the fixed 7-field checklist.
func UserCompletion(u *entity.User) int {
	filled := 0
	for _, item := range userChecklist {
		if item.Filled(u) {
			filled++
		}
	}
	return percent(filled, len(userChecklist))
}

// UserMissingFields returns the labels of unfilled required personal fields,
// in checklist declaration order.
func UserMissingFields(u *entity.User) []string {
	var missing []string
	for _, item := range userChecklist {
		if !item.Filled(u) {
			missing = append(missing, item.Label)
		}
	}
	return missing
}

// BusinessCompletion returns the 0-100 completion percentage of a business.
//
// Rejected forces 0 regardless of field contents. Verified-and-paid forces
// exactly 100. Otherwise the raw percentage over the 12-field checklist is
// capped at 99: the last point is only granted by admin verification plus
// payment, never by filling fields.
func BusinessCompletion(b *entity.Business) int {
	if b.Rejected {
		return 0
	}
	if b.Verified && b.PaymentStatus == entity.PaymentPaid {
		return 100
	}
	filled := 0
	for _, item := range businessChecklist {
		if item.Filled(b) {
			filled++
		}
	}
	p := percent(filled, len(businessChecklist))
	if p > 99 {
		p = 99
	}
	return p
}

// BusinessMissingFields returns the labels of unfilled required business
// fields, in checklist declaration order.
func BusinessMissingFields(b *entity.Business) []string {
	var missing []string
	for _, item := range businessChecklist {
		if !item.Filled(b) {
			missing = append(missing, item.Label)
		}
	}
	return missing
}

// BusinessFieldsComplete reports whether every one of the 12 required fields
// is filled (the raw checklist, independent of caps and flags).
func BusinessFieldsComplete(b *entity.Business) bool {
	for _, item := range businessChecklist {
		if !item.Filled(b) {
			return false
		}
	}
	return true
}

package usecase_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
	"github.com/msmepassport/msme-passport-api/internal/domain"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
	"github.com/msmepassport/msme-passport-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory repository fakes. They copy entities on the way in and out so
// tests cannot accidentally mutate stored state through shared pointers, and
// they count writes so precondition-ordering tests can assert that nothing
// was persisted before a refusal.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu             sync.Mutex
	users          map[string]*entity.User
	businesses     map[string]*entity.Business
	secondary      map[string][]string
	invitations    map[string]*entity.CollaborationInvitation
	collaborations map[string]*entity.BusinessCollaboration
	writes         int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:          map[string]*entity.User{},
		businesses:     map[string]*entity.Business{},
		secondary:      map[string][]string{},
		invitations:    map[string]*entity.CollaborationInvitation{},
		collaborations: map[string]*entity.BusinessCollaboration{},
	}
}

func (s *fakeStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func copyUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func copyBusiness(b *entity.Business) *entity.Business {
	if b == nil {
		return nil
	}
	c := *b
	c.LicenseDocuments = append([]string(nil), b.LicenseDocuments...)
	c.RegistrationDocuments = append([]string(nil), b.RegistrationDocuments...)
	c.OperationsDocuments = append([]string(nil), b.OperationsDocuments...)
	return &c
}

// ── UserRepository ────────────────────────────────────────────────────────────

type fakeUserRepo struct{ s *fakeStore }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = copyUser(u)
	r.s.writes++
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return copyUser(r.s.users[id]), nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.ID] = copyUser(u)
	r.s.writes++
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []string
	for id := range r.s.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []*entity.User
	for _, id := range ids {
		out = append(out, copyUser(r.s.users[id]))
	}
	return out, nil
}

func (r *fakeUserRepo) SetVerified(id string, verified bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.Verified = verified
		r.s.writes++
	}
	return nil
}

func (r *fakeUserRepo) SetEmailVerified(id string, verified bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.EmailVerified = verified
		r.s.writes++
	}
	return nil
}

func (r *fakeUserRepo) AdjustBusinessCount(id string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.BusinessCount += delta
		r.s.writes++
	}
	return nil
}

// ── BusinessRepository ────────────────────────────────────────────────────────

type fakeBusinessRepo struct{ s *fakeStore }

var _ repository.BusinessRepository = (*fakeBusinessRepo)(nil)

func (r *fakeBusinessRepo) Create(b *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.businesses[b.ID] = copyBusiness(b)
	r.s.writes++
	return nil
}

func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return copyBusiness(r.s.businesses[id]), nil
}

func (r *fakeBusinessRepo) GetByPassportID(passportID string) (*entity.Business, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.businesses {
		if b.PassportID == passportID && passportID != "" {
			return copyBusiness(b), nil
		}
	}
	return nil, nil
}

func (r *fakeBusinessRepo) Update(b *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.businesses[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c := copyBusiness(b)
	// State transitions go through the dedicated setters only.
	c.Verified = stored.Verified
	c.Rejected = stored.Rejected
	c.RejectionReason = stored.RejectionReason
	c.PaymentStatus = stored.PaymentStatus
	c.QRCode = stored.QRCode
	c.PassportID = stored.PassportID
	r.s.businesses[b.ID] = c
	r.s.writes++
	return nil
}

func (r *fakeBusinessRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.businesses, id)
	r.s.writes++
	return nil
}

func (r *fakeBusinessRepo) ListByUser(userID string, includeArchived bool) ([]*entity.Business, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Business
	for _, b := range r.s.businesses {
		if b.UserID == userID && (includeArchived || !b.Archived) {
			out = append(out, copyBusiness(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out, nil
}

func (r *fakeBusinessRepo) ListByIDs(ids []string) ([]*entity.Business, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Business
	for _, id := range ids {
		if b, ok := r.s.businesses[id]; ok {
			out = append(out, copyBusiness(b))
		}
	}
	return out, nil
}

func (r *fakeBusinessRepo) ListUnderReview(limit, offset int) ([]*entity.Business, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Business
	for _, b := range r.s.businesses {
		if !b.Verified && !b.Rejected {
			out = append(out, copyBusiness(b))
		}
	}
	return out, nil
}

func (r *fakeBusinessRepo) List(limit, offset int) ([]*entity.Business, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Business
	for _, b := range r.s.businesses {
		out = append(out, copyBusiness(b))
	}
	return out, nil
}

func (r *fakeBusinessRepo) CountByUser(userID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, b := range r.s.businesses {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBusinessRepo) SetVerification(id string, verified bool, paymentStatus string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.businesses[id]; ok {
		b.Verified = verified
		b.PaymentStatus = paymentStatus
		r.s.writes++
	}
	return nil
}

func (r *fakeBusinessRepo) SetRejection(id string, rejected bool, reason string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.businesses[id]; ok {
		b.Rejected = rejected
		b.RejectionReason = reason
		if rejected {
			b.Verified = false
		}
		r.s.writes++
	}
	return nil
}

func (r *fakeBusinessRepo) SetPaymentStatus(id string, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.businesses[id]; ok {
		b.PaymentStatus = status
		r.s.writes++
	}
	return nil
}

func (r *fakeBusinessRepo) SetPassport(id string, qrCode, passportID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.businesses[id]; ok {
		b.QRCode = qrCode
		b.PassportID = passportID
		r.s.writes++
	}
	return nil
}

func (r *fakeBusinessRepo) SetArchived(id string, archived bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.businesses[id]; ok {
		b.Archived = archived
		r.s.writes++
	}
	return nil
}

func (r *fakeBusinessRepo) ReplaceSecondaryAffiliates(businessID string, affiliateIDs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.secondary[businessID] = append([]string(nil), affiliateIDs...)
	r.s.writes++
	return nil
}

func (r *fakeBusinessRepo) ListSecondaryAffiliateIDs(businessID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]string(nil), r.s.secondary[businessID]...), nil
}

// ── CollaborationRepository ───────────────────────────────────────────────────

type fakeCollabRepo struct{ s *fakeStore }

var _ repository.CollaborationRepository = (*fakeCollabRepo)(nil)

func (r *fakeCollabRepo) CreateInvitation(inv *entity.CollaborationInvitation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	// Mirror of the partial unique index on (business, email, status=pending).
	for _, existing := range r.s.invitations {
		if existing.BusinessID == inv.BusinessID &&
			strings.EqualFold(existing.InviteeEmail, inv.InviteeEmail) &&
			existing.Status == entity.InvitationPending {
			return domain.ErrDuplicate
		}
	}
	c := *inv
	r.s.invitations[inv.ID] = &c
	r.s.writes++
	return nil
}

func (r *fakeCollabRepo) GetInvitationByID(id string) (*entity.CollaborationInvitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if inv, ok := r.s.invitations[id]; ok {
		c := *inv
		return &c, nil
	}
	return nil, nil
}

func (r *fakeCollabRepo) FindPendingInvitation(businessID, inviteeEmail string) (*entity.CollaborationInvitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.invitations {
		if inv.BusinessID == businessID &&
			strings.EqualFold(inv.InviteeEmail, inviteeEmail) &&
			inv.Status == entity.InvitationPending {
			c := *inv
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCollabRepo) UpdateInvitationStatus(id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if inv, ok := r.s.invitations[id]; ok {
		inv.Status = status
		r.s.writes++
	}
	return nil
}

func (r *fakeCollabRepo) ListInvitationsByEmail(inviteeEmail string) ([]*entity.CollaborationInvitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.CollaborationInvitation
	for _, inv := range r.s.invitations {
		if strings.EqualFold(inv.InviteeEmail, inviteeEmail) {
			c := *inv
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeCollabRepo) ListInvitationsByBusiness(businessID string) ([]*entity.CollaborationInvitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.CollaborationInvitation
	for _, inv := range r.s.invitations {
		if inv.BusinessID == businessID {
			c := *inv
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeCollabRepo) CreateCollaboration(c *entity.BusinessCollaboration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cc := *c
	r.s.collaborations[c.ID] = &cc
	r.s.writes++
	return nil
}

func (r *fakeCollabRepo) GetCollaboration(businessID, collaboratorID string) (*entity.BusinessCollaboration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.collaborations {
		if g.BusinessID == businessID && g.CollaboratorID == collaboratorID {
			c := *g
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCollabRepo) GetCollaborationByID(id string) (*entity.BusinessCollaboration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if g, ok := r.s.collaborations[id]; ok {
		c := *g
		return &c, nil
	}
	return nil, nil
}

func (r *fakeCollabRepo) ListCollaborationsByBusiness(businessID string) ([]*entity.BusinessCollaboration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.BusinessCollaboration
	for _, g := range r.s.collaborations {
		if g.BusinessID == businessID {
			c := *g
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeCollabRepo) ListCollaborationsByUser(collaboratorID string) ([]*entity.BusinessCollaboration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.BusinessCollaboration
	for _, g := range r.s.collaborations {
		if g.CollaboratorID == collaboratorID {
			c := *g
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeCollabRepo) DeleteCollaboration(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.collaborations, id)
	r.s.writes++
	return nil
}

// ── TxRunner / presentation ports ─────────────────────────────────────────────

type fakeTxRunner struct {
	users      repository.UserRepository
	businesses repository.BusinessRepository
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	users repository.UserRepository,
	businesses repository.BusinessRepository,
) error) error {
	return fn(t.users, t.businesses)
}

type fakeQREncoder struct{}

func (fakeQREncoder) EncodePNG(payload string, size int) ([]byte, error) {
	return []byte("png:" + payload), nil
}

type fakeCardGenerator struct{}

func (fakeCardGenerator) GeneratePassportCard(b *entity.Business, qrPNG []byte, issuerName string) ([]byte, error) {
	return []byte("pdf:" + b.PassportID), nil
}

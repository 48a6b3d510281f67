package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/config"
	"votehub/internal/core/domain"
)

// fakeStore backs the repository fakes with the same conditional-write
// semantics as the SQL implementations, behind a single mutex so the
// concurrency properties are testable.
type fakeStore struct {
	mu         sync.Mutex
	userSeq    uint
	candSeq    uint
	users      map[uint]*models.User
	candidates map[uint]*models.Candidate
	votes      []*models.Vote
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[uint]*models.User),
		candidates: make(map[uint]*models.Candidate),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 24,
		},
	}
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	return &cp
}

func cloneCandidate(c *models.Candidate) *models.Candidate {
	cp := *c
	return &cp
}

// addUser inserts a user directly, bypassing signup validation
func (s *fakeStore) addUser(u *models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userSeq++
	u.ID = s.userSeq
	if u.Role == "" {
		u.Role = domain.RoleVoter
	}
	if u.ApplicationStatus == "" {
		u.ApplicationStatus = domain.ApplicationNone
	}
	s.users[u.ID] = u
	return u
}

// addCandidate inserts a candidate directly
func (s *fakeStore) addCandidate(c *models.Candidate) *models.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candSeq++
	c.ID = s.candSeq
	s.candidates[c.ID] = c
	return c
}

func (s *fakeStore) ballotCountForUser(userID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.votes {
		if v.UserID == userID {
			n++
		}
	}
	return n
}

// --- UserRepository fake ---

type fakeUserRepo struct{ s *fakeStore }

func (s *fakeStore) userRepo() *fakeUserRepo { return &fakeUserRepo{s} }

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.AadhaarNumber == user.AadhaarNumber {
			return domain.ErrDuplicateEntry
		}
	}
	r.s.userSeq++
	user.ID = r.s.userSeq
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *fakeUserRepo) CreateAdmin(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Role == domain.RoleAdmin {
			return domain.ErrAdminExists
		}
	}
	for _, u := range r.s.users {
		if u.AadhaarNumber == user.AadhaarNumber {
			return domain.ErrDuplicateEntry
		}
	}
	user.Role = domain.RoleAdmin
	r.s.userSeq++
	user.ID = r.s.userSeq
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *fakeUserRepo) GetByAadhaar(ctx context.Context, aadhaar string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.AadhaarNumber == aadhaar {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) ExistsByAadhaar(ctx context.Context, aadhaar string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.AadhaarNumber == aadhaar {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) AdminExists(ctx context.Context) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Role == domain.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id uint, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Password = hash
	return nil
}

func (r *fakeUserRepo) SubmitApplication(ctx context.Context, userID uint, party, manifesto string, appliedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok || u.Role != domain.RoleVoter || u.IsVoted ||
		u.ApplicationStatus == domain.ApplicationPending ||
		u.ApplicationStatus == domain.ApplicationApproved {
		return domain.ErrStaleState
	}
	at := appliedAt
	u.ApplicationStatus = domain.ApplicationPending
	u.Party = party
	u.Manifesto = manifesto
	u.AppliedAt = &at
	return nil
}

func (r *fakeUserRepo) ApproveApplication(ctx context.Context, userID uint, approvedAt time.Time) (*models.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if u.ApplicationStatus != domain.ApplicationPending {
		return nil, domain.ErrStaleState
	}
	at := approvedAt
	u.ApplicationStatus = domain.ApplicationApproved
	u.ApprovedAt = &at

	r.s.candSeq++
	candidate := &models.Candidate{
		ID:                    r.s.candSeq,
		Name:                  u.Name,
		Party:                 u.Party,
		Age:                   u.Age,
		Manifesto:             u.Manifesto,
		ApplicantUserID:       &u.ID,
		IsFromUserApplication: true,
	}
	r.s.candidates[candidate.ID] = candidate
	return cloneCandidate(candidate), nil
}

func (r *fakeUserRepo) RejectApplication(ctx context.Context, userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok || u.ApplicationStatus != domain.ApplicationPending {
		return domain.ErrStaleState
	}
	u.ApplicationStatus = domain.ApplicationRejected
	return nil
}

func (r *fakeUserRepo) ListApplicants(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var applicants []*models.User
	for _, u := range r.s.users {
		if u.ApplicationStatus != domain.ApplicationNone {
			applicants = append(applicants, cloneUser(u))
		}
	}
	sort.Slice(applicants, func(i, j int) bool {
		return applicants[i].ID < applicants[j].ID
	})
	total := int64(len(applicants))
	if offset >= len(applicants) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(applicants) {
		end = len(applicants)
	}
	return applicants[offset:end], total, nil
}

func (r *fakeUserRepo) TurnoutCounts(ctx context.Context) (int64, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var registered, voted int64
	for _, u := range r.s.users {
		if u.Role != domain.RoleVoter {
			continue
		}
		registered++
		if u.IsVoted {
			voted++
		}
	}
	return registered, voted, nil
}

// --- CandidateRepository fake ---

type fakeCandidateRepo struct{ s *fakeStore }

func (s *fakeStore) candidateRepo() *fakeCandidateRepo { return &fakeCandidateRepo{s} }

func (r *fakeCandidateRepo) Create(ctx context.Context, candidate *models.Candidate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.candSeq++
	candidate.ID = r.s.candSeq
	r.s.candidates[candidate.ID] = cloneCandidate(candidate)
	return nil
}

func (r *fakeCandidateRepo) GetByID(ctx context.Context, id uint) (*models.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.candidates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneCandidate(c), nil
}

func (r *fakeCandidateRepo) Update(ctx context.Context, candidate *models.Candidate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.candidates[candidate.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.candidates[candidate.ID] = cloneCandidate(candidate)
	return nil
}

func (r *fakeCandidateRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.candidates[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.candidates, id)
	return nil
}

func (r *fakeCandidateRepo) List(ctx context.Context) ([]*models.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sortedLocked(func(a, b *models.Candidate) bool {
		return a.ID < b.ID
	}), nil
}

func (r *fakeCandidateRepo) ListByVotes(ctx context.Context) ([]*models.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sortedLocked(func(a, b *models.Candidate) bool {
		if a.VoteCount != b.VoteCount {
			return a.VoteCount > b.VoteCount
		}
		return a.ID < b.ID
	}), nil
}

func (r *fakeCandidateRepo) sortedLocked(less func(a, b *models.Candidate) bool) []*models.Candidate {
	candidates := make([]*models.Candidate, 0, len(r.s.candidates))
	for _, c := range r.s.candidates {
		candidates = append(candidates, cloneCandidate(c))
	}
	sort.Slice(candidates, func(i, j int) bool {
		return less(candidates[i], candidates[j])
	})
	return candidates
}

// --- VoteRepository fake ---

type fakeVoteRepo struct{ s *fakeStore }

func (s *fakeStore) voteRepo() *fakeVoteRepo { return &fakeVoteRepo{s} }

func (r *fakeVoteRepo) RecordBallot(ctx context.Context, userID, candidateID uint, votedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok || u.Role != domain.RoleVoter || u.IsVoted ||
		u.ApplicationStatus == domain.ApplicationApproved {
		return domain.ErrStaleState
	}
	for _, v := range r.s.votes {
		if v.UserID == userID {
			return domain.ErrStaleState
		}
	}
	c, ok := r.s.candidates[candidateID]
	if !ok {
		return domain.ErrNotFound
	}

	u.IsVoted = true
	r.s.votes = append(r.s.votes, &models.Vote{
		ID:          uint(len(r.s.votes) + 1),
		CandidateID: candidateID,
		UserID:      userID,
		VotedAt:     votedAt,
	})
	c.VoteCount++
	return nil
}

package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/core/domain"
)

type VotingServiceSuite struct {
	suite.Suite
	store     *fakeStore
	svc       *VotingService
	candidate *models.Candidate
}

func TestVotingServiceSuite(t *testing.T) {
	suite.Run(t, new(VotingServiceSuite))
}

func (s *VotingServiceSuite) SetupTest() {
	s.store = newFakeStore()
	s.svc = NewVotingService(s.store.userRepo(), s.store.candidateRepo(), s.store.voteRepo())
	s.candidate = s.store.addCandidate(&models.Candidate{
		Name:  "Ravi Kumar",
		Party: "Progress Party",
		Age:   45,
	})
}

func (s *VotingServiceSuite) addVoter(aadhaar string) *models.User {
	return s.store.addUser(&models.User{
		Name:          "Voter " + aadhaar,
		Age:           30,
		AadhaarNumber: aadhaar,
	})
}

func (s *VotingServiceSuite) TestCastVote() {
	voter := s.addVoter("222222222222")

	err := s.svc.CastVote(context.Background(), voter.ID, s.candidate.ID)
	s.Require().NoError(err)

	stored, err := s.store.userRepo().GetByID(context.Background(), voter.ID)
	s.Require().NoError(err)
	s.True(stored.IsVoted)

	candidate, err := s.store.candidateRepo().GetByID(context.Background(), s.candidate.ID)
	s.Require().NoError(err)
	s.Equal(1, candidate.VoteCount)
	s.Equal(1, s.store.ballotCountForUser(voter.ID))
}

func (s *VotingServiceSuite) TestCastVoteUnknownCandidate() {
	voter := s.addVoter("222222222222")

	err := s.svc.CastVote(context.Background(), voter.ID, 9999)
	s.ErrorIs(err, ErrCandidateNotFound)

	stored, err := s.store.userRepo().GetByID(context.Background(), voter.ID)
	s.Require().NoError(err)
	s.False(stored.IsVoted)
}

func (s *VotingServiceSuite) TestCastVoteUnknownUser() {
	err := s.svc.CastVote(context.Background(), 9999, s.candidate.ID)
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *VotingServiceSuite) TestAdminCannotVote() {
	admin := s.store.addUser(&models.User{
		Name:          "Admin",
		AadhaarNumber: "111111111111",
		Role:          domain.RoleAdmin,
	})

	err := s.svc.CastVote(context.Background(), admin.ID, s.candidate.ID)
	s.ErrorIs(err, ErrAdminCannotVote)
}

func (s *VotingServiceSuite) TestSecondVoteRejected() {
	voter := s.addVoter("222222222222")
	other := s.store.addCandidate(&models.Candidate{Name: "Meera Shah", Party: "Unity Front", Age: 50})

	s.Require().NoError(s.svc.CastVote(context.Background(), voter.ID, s.candidate.ID))

	err := s.svc.CastVote(context.Background(), voter.ID, other.ID)
	s.ErrorIs(err, ErrAlreadyVoted)

	s.Equal(1, s.store.ballotCountForUser(voter.ID))
}

func (s *VotingServiceSuite) TestApprovedApplicantCannotVote() {
	applicant := s.store.addUser(&models.User{
		Name:              "Applicant",
		AadhaarNumber:     "222222222222",
		ApplicationStatus: domain.ApplicationApproved,
	})

	err := s.svc.CastVote(context.Background(), applicant.ID, s.candidate.ID)
	s.ErrorIs(err, ErrCandidateCannotVote)
}

func (s *VotingServiceSuite) TestPendingApplicantCanVote() {
	applicant := s.store.addUser(&models.User{
		Name:              "Applicant",
		AadhaarNumber:     "222222222222",
		ApplicationStatus: domain.ApplicationPending,
	})

	s.NoError(s.svc.CastVote(context.Background(), applicant.ID, s.candidate.ID))
}

func (s *VotingServiceSuite) TestConcurrentCastsRecordOneBallot() {
	voter := s.addVoter("222222222222")

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.svc.CastVote(context.Background(), voter.ID, s.candidate.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			s.ErrorIs(err, ErrAlreadyVoted)
		}
	}
	s.Equal(1, succeeded)
	s.Equal(1, s.store.ballotCountForUser(voter.ID))

	candidate, err := s.store.candidateRepo().GetByID(context.Background(), s.candidate.ID)
	s.Require().NoError(err)
	s.Equal(1, candidate.VoteCount)
}

func (s *VotingServiceSuite) TestTallyOrdering() {
	// s.candidate already holds position 1; give it 3 votes, then two more
	// parties with 5, 5 and 1. Ties keep insertion order.
	second := s.store.addCandidate(&models.Candidate{Name: "B", Party: "Beta", Age: 40})
	third := s.store.addCandidate(&models.Candidate{Name: "C", Party: "Gamma", Age: 41})
	fourth := s.store.addCandidate(&models.Candidate{Name: "D", Party: "Delta", Age: 42})

	targets := []struct {
		candidateID uint
		votes       int
	}{
		{s.candidate.ID, 3},
		{second.ID, 5},
		{third.ID, 5},
		{fourth.ID, 1},
	}
	seq := 0
	for _, target := range targets {
		for i := 0; i < target.votes; i++ {
			seq++
			voter := s.addVoter(fmt.Sprintf("9000000000%02d", seq))
			s.Require().NoError(s.svc.CastVote(context.Background(), voter.ID, target.candidateID))
		}
	}

	tally, err := s.svc.Tally(context.Background())
	s.Require().NoError(err)
	s.Require().Len(tally, 4)

	s.Equal("Beta", tally[0].Party)
	s.Equal(5, tally[0].VoteCount)
	s.Equal("Gamma", tally[1].Party)
	s.Equal(5, tally[1].VoteCount)
	s.Equal("Progress Party", tally[2].Party)
	s.Equal(3, tally[2].VoteCount)
	s.Equal("Delta", tally[3].Party)
	s.Equal(1, tally[3].VoteCount)
}

func (s *VotingServiceSuite) TestTallyIncludesZeroVoteCandidates() {
	tally, err := s.svc.Tally(context.Background())
	s.Require().NoError(err)
	s.Require().Len(tally, 1)
	s.Equal("Progress Party", tally[0].Party)
	s.Equal(0, tally[0].VoteCount)
}

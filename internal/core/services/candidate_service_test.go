package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"votehub/internal/adapters/persistence/models"
)

type CandidateServiceSuite struct {
	suite.Suite
	store *fakeStore
	svc   *CandidateService
}

func TestCandidateServiceSuite(t *testing.T) {
	suite.Run(t, new(CandidateServiceSuite))
}

func (s *CandidateServiceSuite) SetupTest() {
	s.store = newFakeStore()
	s.svc = NewCandidateService(s.store.candidateRepo())
}

func (s *CandidateServiceSuite) TestCreate() {
	candidate, err := s.svc.Create(context.Background(), &CreateCandidateInput{
		Name:  "Ravi Kumar",
		Party: "Progress Party",
		Age:   45,
	})
	s.Require().NoError(err)
	s.NotZero(candidate.ID)
	s.False(candidate.IsFromUserApplication)
	s.Nil(candidate.ApplicantUserID)
}

func (s *CandidateServiceSuite) TestCreateRejectsIncompleteInput() {
	cases := []*CreateCandidateInput{
		{Party: "Progress Party", Age: 45},
		{Name: "Ravi Kumar", Age: 45},
		{Name: "Ravi Kumar", Party: "Progress Party"},
		{Name: "Ravi Kumar", Party: "Progress Party", Age: -1},
	}
	for _, input := range cases {
		_, err := s.svc.Create(context.Background(), input)
		s.ErrorIs(err, ErrInvalidCandidate)
	}
}

func (s *CandidateServiceSuite) TestListReturnsPublicFields() {
	s.store.addCandidate(&models.Candidate{
		Name:      "Ravi Kumar",
		Party:     "Progress Party",
		Age:       45,
		Manifesto: "internal text",
		VoteCount: 7,
	})

	listing, err := s.svc.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(listing, 1)
	s.Equal("Ravi Kumar", listing[0].Name)
	s.Equal("Progress Party", listing[0].Party)
	s.Equal(45, listing[0].Age)
}

func (s *CandidateServiceSuite) TestUpdate() {
	candidate := s.store.addCandidate(&models.Candidate{Name: "Ravi Kumar", Party: "Progress Party", Age: 45})

	newParty := "Unity Front"
	newAge := 46
	updated, err := s.svc.Update(context.Background(), candidate.ID, &UpdateCandidateInput{
		Party: &newParty,
		Age:   &newAge,
	})
	s.Require().NoError(err)
	s.Equal("Ravi Kumar", updated.Name)
	s.Equal("Unity Front", updated.Party)
	s.Equal(46, updated.Age)
}

func (s *CandidateServiceSuite) TestUpdateRejectsClearedFields() {
	candidate := s.store.addCandidate(&models.Candidate{Name: "Ravi Kumar", Party: "Progress Party", Age: 45})

	empty := ""
	_, err := s.svc.Update(context.Background(), candidate.ID, &UpdateCandidateInput{Name: &empty})
	s.ErrorIs(err, ErrInvalidCandidate)
}

func (s *CandidateServiceSuite) TestUpdateUnknownCandidate() {
	name := "Nobody"
	_, err := s.svc.Update(context.Background(), 9999, &UpdateCandidateInput{Name: &name})
	s.ErrorIs(err, ErrCandidateNotFound)
}

func (s *CandidateServiceSuite) TestDelete() {
	candidate := s.store.addCandidate(&models.Candidate{Name: "Ravi Kumar", Party: "Progress Party", Age: 45})

	s.Require().NoError(s.svc.Delete(context.Background(), candidate.ID))

	listing, err := s.svc.List(context.Background())
	s.Require().NoError(err)
	s.Empty(listing)

	s.ErrorIs(s.svc.Delete(context.Background(), candidate.ID), ErrCandidateNotFound)
}

package services

import (
	"context"
	"errors"
	"log"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/adapters/persistence/repositories"
	"votehub/internal/core/domain"
)

// Candidate errors
var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidCandidate  = errors.New("name, party and a positive age are required")
)

// CandidateService handles candidate registry CRUD, independent of the
// application workflow.
type CandidateService struct {
	candidateRepo repositories.CandidateRepository
}

// NewCandidateService creates a new candidate service
func NewCandidateService(candidateRepo repositories.CandidateRepository) *CandidateService {
	return &CandidateService{candidateRepo: candidateRepo}
}

// List returns the public candidate listing: id, name, party and age only
func (s *CandidateService) List(ctx context.Context) ([]*models.CandidateResponse, error) {
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	listing := make([]*models.CandidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		listing = append(listing, candidate.ToResponse())
	}
	return listing, nil
}

// CreateCandidateInput represents direct candidate creation input
type CreateCandidateInput struct {
	Name      string `json:"name"`
	Party     string `json:"party"`
	Age       int    `json:"age"`
	Manifesto string `json:"manifesto,omitempty"`
}

// Create inserts a candidate with no backing application
func (s *CandidateService) Create(ctx context.Context, input *CreateCandidateInput) (*models.Candidate, error) {
	if input.Name == "" || input.Party == "" || input.Age <= 0 {
		return nil, ErrInvalidCandidate
	}

	candidate := &models.Candidate{
		Name:      input.Name,
		Party:     input.Party,
		Age:       input.Age,
		Manifesto: input.Manifesto,
	}
	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	log.Printf("Candidate created: %s (%s)", candidate.Name, candidate.Party)
	return candidate, nil
}

// UpdateCandidateInput represents candidate update input; nil fields keep
// their current value.
type UpdateCandidateInput struct {
	Name      *string `json:"name,omitempty"`
	Party     *string `json:"party,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Manifesto *string `json:"manifesto,omitempty"`
}

// Update applies field changes to a candidate
func (s *CandidateService) Update(ctx context.Context, id uint, input *UpdateCandidateInput) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		candidate.Name = *input.Name
	}
	if input.Party != nil {
		candidate.Party = *input.Party
	}
	if input.Age != nil {
		candidate.Age = *input.Age
	}
	if input.Manifesto != nil {
		candidate.Manifesto = *input.Manifesto
	}
	if candidate.Name == "" || candidate.Party == "" || candidate.Age <= 0 {
		return nil, ErrInvalidCandidate
	}

	if err := s.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	log.Printf("Candidate updated: ID %d", id)
	return candidate, nil
}

// Delete removes a candidate
func (s *CandidateService) Delete(ctx context.Context, id uint) error {
	if err := s.candidateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrCandidateNotFound
		}
		return err
	}

	log.Printf("Candidate deleted: ID %d", id)
	return nil
}

package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"votehub/internal/adapters/persistence/repositories"
)

// ReportService logs a daily turnout and standings report. Read-only; a
// failed run is logged and retried on the next schedule.
type ReportService struct {
	userRepo      repositories.UserRepository
	candidateRepo repositories.CandidateRepository
	cron          *cron.Cron
}

// NewReportService creates a new report service
func NewReportService(
	userRepo repositories.UserRepository,
	candidateRepo repositories.CandidateRepository,
) *ReportService {
	return &ReportService{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		cron:          cron.New(),
	}
}

// Start schedules the daily report at 08:30
func (s *ReportService) Start() {
	s.cron.AddFunc("30 8 * * *", s.LogTurnout)
	s.cron.Start()
	log.Println("Turnout report scheduled daily at 08:30")
}

// Stop stops the scheduler
func (s *ReportService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// LogTurnout logs registered-voter turnout and the current standings
func (s *ReportService) LogTurnout() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	registered, voted, err := s.userRepo.TurnoutCounts(ctx)
	if err != nil {
		log.Printf("Turnout report failed: %v", err)
		return
	}

	pct := 0.0
	if registered > 0 {
		pct = float64(voted) / float64(registered) * 100
	}
	log.Printf("Turnout: %d/%d registered voters (%.1f%%)", voted, registered, pct)

	candidates, err := s.candidateRepo.ListByVotes(ctx)
	if err != nil {
		log.Printf("Standings report failed: %v", err)
		return
	}
	for i, candidate := range candidates {
		log.Printf("Standings #%d: %s (%s) - %d votes", i+1, candidate.Name, candidate.Party, candidate.VoteCount)
	}
}

package models

import (
	"time"

	"gorm.io/gorm"

	"votehub/internal/core/domain"
)

// User represents the users table. A user is either a voter or the single
// admin; candidacy state lives on the user until an approval promotes it into
// a standalone Candidate row.
type User struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `gorm:"size:100;not null" json:"name"`
	Age           int         `gorm:"not null" json:"age"`
	Email         string      `gorm:"size:100" json:"email,omitempty"`
	Mobile        string      `gorm:"size:20" json:"mobile,omitempty"`
	Address       string      `gorm:"size:255;not null" json:"address"`
	AadhaarNumber string      `gorm:"uniqueIndex;size:12;not null" json:"aadhaar_number"`
	Password      string      `gorm:"size:255;not null" json:"-"`
	Role          domain.Role `gorm:"size:10;default:'voter';index" json:"role"`
	IsVoted       bool        `gorm:"default:false" json:"is_voted"`

	// Candidacy sub-state, only meaningful for role=voter
	ApplicationStatus domain.ApplicationStatus `gorm:"size:10;default:'none'" json:"application_status"`
	Party             string                   `gorm:"size:100" json:"party,omitempty"`
	Manifesto         string                   `gorm:"type:text" json:"manifesto,omitempty"`
	AppliedAt         *time.Time               `json:"applied_at,omitempty"`
	ApprovedAt        *time.Time               `json:"approved_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsApplicant reports whether the user ever submitted a candidacy application.
func (u *User) IsApplicant() bool {
	return u.ApplicationStatus != domain.ApplicationNone
}

// UserResponse DTO
type UserResponse struct {
	ID            uint        `json:"id"`
	Name          string      `json:"name"`
	Age           int         `json:"age"`
	Email         string      `json:"email,omitempty"`
	Mobile        string      `json:"mobile,omitempty"`
	Address       string      `json:"address"`
	AadhaarNumber string      `json:"aadhaar_number"`
	Role          domain.Role `json:"role"`
	IsVoted       bool        `json:"is_voted"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Age:           u.Age,
		Email:         u.Email,
		Mobile:        u.Mobile,
		Address:       u.Address,
		AadhaarNumber: u.AadhaarNumber,
		Role:          u.Role,
		IsVoted:       u.IsVoted,
	}
}

// ApplicationResponse DTO for the admin application listing
type ApplicationResponse struct {
	ID            uint                     `json:"id"`
	Name          string                   `json:"name"`
	Age           int                      `json:"age"`
	AadhaarNumber string                   `json:"aadhaar_number"`
	Party         string                   `json:"party"`
	Manifesto     string                   `json:"manifesto"`
	Status        domain.ApplicationStatus `json:"status"`
	AppliedAt     *time.Time               `json:"applied_at,omitempty"`
	ApprovedAt    *time.Time               `json:"approved_at,omitempty"`
}

func (u *User) ToApplication() *ApplicationResponse {
	return &ApplicationResponse{
		ID:            u.ID,
		Name:          u.Name,
		Age:           u.Age,
		AadhaarNumber: u.AadhaarNumber,
		Party:         u.Party,
		Manifesto:     u.Manifesto,
		Status:        u.ApplicationStatus,
		AppliedAt:     u.AppliedAt,
		ApprovedAt:    u.ApprovedAt,
	}
}

// Candidate represents the candidates table. A candidate is owned
// independently of its originating user once created.
type Candidate struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	Name                  string    `gorm:"size:100;not null" json:"name"`
	Party                 string    `gorm:"size:100;not null" json:"party"`
	Age                   int       `gorm:"not null" json:"age"`
	Manifesto             string    `gorm:"type:text" json:"manifesto,omitempty"`
	VoteCount             int       `gorm:"default:0" json:"vote_count"`
	ApplicantUserID       *uint     `gorm:"index" json:"applicant_user_id,omitempty"`
	IsFromUserApplication bool      `gorm:"default:false" json:"is_from_user_application"`
	Votes                 []Vote    `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// CandidateResponse is the public listing DTO: no ballots, no counts.
type CandidateResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
	Age   int    `json:"age"`
}

func (c *Candidate) ToResponse() *CandidateResponse {
	return &CandidateResponse{
		ID:    c.ID,
		Name:  c.Name,
		Party: c.Party,
		Age:   c.Age,
	}
}

// Vote represents the votes table. The unique index on UserID enforces the
// one-ballot-per-voter invariant across all candidates at the store level.
type Vote struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CandidateID uint      `gorm:"index;not null" json:"candidate_id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	VotedAt     time.Time `gorm:"not null" json:"voted_at"`
}

func (Vote) TableName() string {
	return "votes"
}

// PartyTally is one row of the public vote tally.
type PartyTally struct {
	Party     string `json:"party"`
	VoteCount int    `json:"vote_count"`
}

// AutoMigrate creates or updates the schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Candidate{},
		&Vote{},
	)
}

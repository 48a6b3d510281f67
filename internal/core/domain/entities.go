package domain

// Role represents user role in the system
type Role string

const (
	RoleVoter Role = "voter"
	RoleAdmin Role = "admin"
)

// ApplicationStatus represents the candidacy application lifecycle state
type ApplicationStatus string

const (
	ApplicationNone     ApplicationStatus = "none"
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// DecisionAction represents an admin decision on a candidacy application
type DecisionAction string

const (
	ActionApprove DecisionAction = "approve"
	ActionReject  DecisionAction = "reject"
)

// MinManifestoLength is the minimum accepted manifesto length for a candidacy
// application.
const MinManifestoLength = 50

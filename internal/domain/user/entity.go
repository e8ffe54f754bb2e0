package user

import "time"

type Role string

const (
	RoleCandidate Role = "candidate" // Job seeker
	RoleEmployer  Role = "employer"  // Posts jobs for a company
	RoleAdmin     Role = "admin"     // Moderates resumes, companies, jobs
)

// AccountStatus gates login. Accounts stay inactive until the registration
// OTP is verified.
type AccountStatus string

const (
	AccountInactive AccountStatus = "inactive"
	AccountActive   AccountStatus = "active"
	AccountBlocked  AccountStatus = "blocked"
)

type ProfileStatus string

const (
	ProfileIncomplete ProfileStatus = "incomplete"
	ProfileComplete   ProfileStatus = "complete"
)

// ResumeStatus is the moderation outcome for a candidate resume. A new
// upload always resets it to pending.
type ResumeStatus string

const (
	ResumePending  ResumeStatus = "pending"
	ResumeApproved ResumeStatus = "approved"
	ResumeRejected ResumeStatus = "rejected"
)

type User struct {
	ID            string
	Name          string
	Email         string
	Mobile        string
	PasswordHash  string
	Role          Role
	AccountStatus AccountStatus
	ProfileStatus ProfileStatus
	ResumeStatus  ResumeStatus
	ResumePath    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin checks if user is a moderator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsEmployer checks if user can own a company
func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

// IsCandidate checks if user can apply to jobs
func (u *User) IsCandidate() bool {
	return u.Role == RoleCandidate
}

// IsActive checks if the account passed OTP verification and is not blocked
func (u *User) IsActive() bool {
	return u.AccountStatus == AccountActive
}

// CanApply checks if the resume cleared moderation
func (u *User) CanApply() bool {
	return u.ResumeStatus == ResumeApproved
}

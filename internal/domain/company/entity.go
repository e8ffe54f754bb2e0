package company

import "time"

// Status is the moderation outcome for a company. Only approved companies
// may post jobs.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Company struct {
	ID                string
	RecruiterID       string
	Name              string
	Address           *string
	BusinessProofPath string
	IDProofPath       string
	LogoPath          *string
	Status            Status
	PlanExpiresAt     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsApproved checks if the company cleared moderation
func (c *Company) IsApproved() bool {
	return c.Status == StatusApproved
}

// HasActivePlan checks the subscription gate (query-time check)
func (c *Company) HasActivePlan() bool {
	return c.PlanExpiresAt != nil && c.PlanExpiresAt.After(time.Now())
}

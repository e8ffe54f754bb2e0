// Package moderation defines the admin-only state machines that gate
// visibility of resumes, companies and job postings.
//
// Each entity type has one reviewable state and two outcomes:
//
//	resume:  PENDING ──► APPROVED | REJECTED
//	company: PENDING ──► APPROVED | REJECTED
//	job:     PENDING ──► OPEN     | REJECTED
//
// APPROVED, REJECTED and OPEN are terminal for the gate. Re-review happens
// only when the owner submits new material (resume upload, company document
// update), which resets the entity to PENDING outside this package. The
// job CLOSED state is a direct owner/admin action and never passes through
// the gate.
package moderation

import (
	"fmt"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
)

// EntityType tags which state machine a decision applies to.
type EntityType string

const (
	EntityResume  EntityType = "resume"
	EntityCompany EntityType = "company"
	EntityJob     EntityType = "job"
)

// ParseEntityType converts a raw string to an EntityType, returning an
// error for unknown values.
func ParseEntityType(s string) (EntityType, error) {
	et := EntityType(s)
	switch et {
	case EntityResume, EntityCompany, EntityJob:
		return et, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntityType, s)
}

// knownStatuses lists every status value an entity type can hold.
var knownStatuses = map[EntityType][]string{
	EntityResume: {
		string(user.ResumePending),
		string(user.ResumeApproved),
		string(user.ResumeRejected),
	},
	EntityCompany: {
		string(company.StatusPending),
		string(company.StatusApproved),
		string(company.StatusRejected),
	},
	EntityJob: {
		string(job.StatusPending),
		string(job.StatusOpen),
		string(job.StatusRejected),
		string(job.StatusClosed),
	},
}

// validTransitions lists every (from → to) pair the gate accepts per
// entity type. Statuses absent from the map are terminal.
var validTransitions = map[EntityType]map[string][]string{
	EntityResume: {
		string(user.ResumePending): {
			string(user.ResumeApproved),
			string(user.ResumeRejected),
		},
	},
	EntityCompany: {
		string(company.StatusPending): {
			string(company.StatusApproved),
			string(company.StatusRejected),
		},
	},
	EntityJob: {
		string(job.StatusPending): {
			string(job.StatusOpen),
			string(job.StatusRejected),
		},
	},
}

// IsKnownStatus reports whether status is a value the entity type can hold
// at all, regardless of transitions.
func IsKnownStatus(entityType EntityType, status string) bool {
	for _, s := range knownStatuses[entityType] {
		if s == status {
			return true
		}
	}
	return false
}

// IsTransitionAllowed reports whether the gate may move an entity of the
// given type from one status to another.
func IsTransitionAllowed(entityType EntityType, from, to string) bool {
	allowed, ok := validTransitions[entityType][from]
	if !ok {
		return false // terminal state, no outgoing transitions
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// DecidableStatuses returns the target statuses the gate accepts for an
// entity currently in the given state.
func DecidableStatuses(entityType EntityType, from string) []string {
	return validTransitions[entityType][from]
}

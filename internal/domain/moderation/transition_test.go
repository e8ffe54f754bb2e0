package moderation

import (
	"testing"
)

func TestParseEntityType_ValidValues(t *testing.T) {
	valid := []string{"resume", "company", "job"}
	for _, s := range valid {
		got, err := ParseEntityType(s)
		if err != nil {
			t.Errorf("ParseEntityType(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseEntityType(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseEntityType_InvalidValues(t *testing.T) {
	for _, s := range []string{"", "user", "application", "Resume"} {
		if _, err := ParseEntityType(s); err == nil {
			t.Errorf("ParseEntityType(%q) expected error, got nil", s)
		}
	}
}

func TestIsTransitionAllowed_ValidDecisions(t *testing.T) {
	cases := []struct {
		entity EntityType
		from   string
		to     string
	}{
		{EntityResume, "pending", "approved"},
		{EntityResume, "pending", "rejected"},
		{EntityCompany, "pending", "approved"},
		{EntityCompany, "pending", "rejected"},
		{EntityJob, "pending", "open"},
		{EntityJob, "pending", "rejected"},
	}
	for _, c := range cases {
		if !IsTransitionAllowed(c.entity, c.from, c.to) {
			t.Errorf("IsTransitionAllowed(%s, %s, %s) = false, want true", c.entity, c.from, c.to)
		}
	}
}

func TestIsTransitionAllowed_TerminalStates(t *testing.T) {
	cases := []struct {
		entity EntityType
		from   string
		to     string
	}{
		// Re-approval after rejection requires a fresh submission, not an
		// admin decision.
		{EntityResume, "approved", "rejected"},
		{EntityResume, "rejected", "approved"},
		{EntityResume, "approved", "pending"},
		{EntityResume, "rejected", "pending"},
		{EntityCompany, "approved", "rejected"},
		{EntityCompany, "rejected", "pending"},
		{EntityJob, "open", "rejected"},
		{EntityJob, "rejected", "open"},
		{EntityJob, "closed", "open"},
	}
	for _, c := range cases {
		if IsTransitionAllowed(c.entity, c.from, c.to) {
			t.Errorf("IsTransitionAllowed(%s, %s, %s) = true, want false", c.entity, c.from, c.to)
		}
	}
}

func TestIsTransitionAllowed_ClosedNeverGateReachable(t *testing.T) {
	// CLOSED is a direct update by the owner, never a moderation outcome.
	if IsTransitionAllowed(EntityJob, "pending", "closed") {
		t.Error("IsTransitionAllowed(job, pending, closed) = true, want false")
	}
	if IsTransitionAllowed(EntityJob, "open", "closed") {
		t.Error("IsTransitionAllowed(job, open, closed) = true, want false")
	}
}

func TestIsTransitionAllowed_CrossEntityStatuses(t *testing.T) {
	// "open" belongs to jobs, "approved" to resumes and companies.
	if IsTransitionAllowed(EntityResume, "pending", "open") {
		t.Error("IsTransitionAllowed(resume, pending, open) = true, want false")
	}
	if IsTransitionAllowed(EntityJob, "pending", "approved") {
		t.Error("IsTransitionAllowed(job, pending, approved) = true, want false")
	}
}

func TestIsKnownStatus(t *testing.T) {
	cases := []struct {
		entity EntityType
		status string
		want   bool
	}{
		{EntityResume, "pending", true},
		{EntityResume, "approved", true},
		{EntityResume, "open", false},
		{EntityCompany, "rejected", true},
		{EntityCompany, "closed", false},
		{EntityJob, "open", true},
		{EntityJob, "closed", true},
		{EntityJob, "approved", false},
		{EntityJob, "", false},
	}
	for _, c := range cases {
		if got := IsKnownStatus(c.entity, c.status); got != c.want {
			t.Errorf("IsKnownStatus(%s, %q) = %v, want %v", c.entity, c.status, got, c.want)
		}
	}
}

func TestDecidableStatuses(t *testing.T) {
	got := DecidableStatuses(EntityJob, "pending")
	if len(got) != 2 {
		t.Fatalf("DecidableStatuses(job, pending) returned %d statuses, want 2", len(got))
	}
	if got[0] != "open" || got[1] != "rejected" {
		t.Errorf("DecidableStatuses(job, pending) = %v, want [open rejected]", got)
	}

	if got := DecidableStatuses(EntityResume, "approved"); len(got) != 0 {
		t.Errorf("DecidableStatuses(resume, approved) = %v, want empty", got)
	}
}

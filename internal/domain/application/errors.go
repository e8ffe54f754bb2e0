package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrResumeNotApproved   = errors.New("resume is not approved")
	ErrUnknownStatus       = errors.New("unknown application status")
)

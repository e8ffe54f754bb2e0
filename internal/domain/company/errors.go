package company

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyExists      = errors.New("recruiter already has a company")
	ErrCompanyMissing     = errors.New("no company registered for this account")
	ErrCompanyNotApproved = errors.New("company is not approved")
)

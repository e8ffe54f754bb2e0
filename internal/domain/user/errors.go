package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAccountBlocked         = errors.New("account is blocked")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrEmployerRoleRequired   = errors.New("employer role required")
	ErrCandidateRoleRequired  = errors.New("candidate role required")
	ErrResumeMissing          = errors.New("no resume uploaded")
)

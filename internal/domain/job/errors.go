package job

import "errors"

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrJobNotOpen      = errors.New("job is not open")
	ErrNotJobOwner     = errors.New("job belongs to another employer")
	ErrPaymentRequired = errors.New("job posting fee has not been paid")
)

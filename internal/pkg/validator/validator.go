package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUID validation
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Mobile number validation (Indian numbering plan)
func IsValidMobile(mobile string) bool {
	// Remove spaces and dashes
	mobile = strings.ReplaceAll(mobile, " ", "")
	mobile = strings.ReplaceAll(mobile, "-", "")

	// Strip country code or trunk prefix
	switch {
	case strings.HasPrefix(mobile, "+91"):
		mobile = strings.TrimPrefix(mobile, "+91")
	case strings.HasPrefix(mobile, "91") && len(mobile) == 12:
		mobile = strings.TrimPrefix(mobile, "91")
	case strings.HasPrefix(mobile, "0") && len(mobile) == 11:
		mobile = strings.TrimPrefix(mobile, "0")
	}

	if len(mobile) != 10 || !IsNumeric(mobile) {
		return false
	}

	// Indian mobile numbers start with 6-9
	return mobile[0] >= '6' && mobile[0] <= '9'
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var otpRegex = regexp.MustCompile(`^\d{6}$`)

// OTP validation: exactly six digits
func IsValidOTP(code string) bool {
	return otpRegex.MatchString(code)
}

package session

import (
	"strings"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
)

const minPasswordLength = 6

// ValidateRegistration checks a registration form before any network
// call. Failures are matchhub validation errors carrying the message to
// display.
func ValidateRegistration(email, password, confirm string) error {
	if strings.TrimSpace(email) == "" {
		return &matchhub.Error{Kind: matchhub.KindValidation, Message: "Email is required"}
	}
	if len([]rune(password)) < minPasswordLength {
		return &matchhub.Error{Kind: matchhub.KindValidation, Message: "Password must be at least 6 characters"}
	}
	if password != confirm {
		return &matchhub.Error{Kind: matchhub.KindValidation, Message: "Passwords do not match"}
	}
	return nil
}

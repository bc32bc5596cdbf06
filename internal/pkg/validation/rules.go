package validation

import "regexp"

// Domain validation rules shared by the service layer. Request binding
// covers the HTTP edge; these guard the service APIs themselves.
var (
	// PRNPattern matches a permanent registration number: 4 to 20
	// alphanumeric characters, dashes allowed.
	PRNPattern = regexp.MustCompile(`^[A-Za-z0-9-]{4,20}$`)

	// EmailPattern is a pragmatic address check, not a full RFC parse.
	EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// PasswordMinLength is the minimum accepted credential length.
const PasswordMinLength = 6

// ValidPRN reports whether the registration number is well formed.
func ValidPRN(prn string) bool {
	return PRNPattern.MatchString(prn)
}

// ValidEmail reports whether the address is plausibly well formed.
func ValidEmail(email string) bool {
	return EmailPattern.MatchString(email)
}

// ValidPassword reports whether the credential meets the length floor.
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// ValidProgress reports whether a completion percentage is in range.
func ValidProgress(progress int) bool {
	return progress >= 0 && progress <= 100
}

package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// AuthStep is where a sign-in flow currently is.
type AuthStep string

const (
	StepAwaitingPassword AuthStep = "awaiting_password"
	StepAwaitingCode     AuthStep = "awaiting_code"
	StepAuthenticated    AuthStep = "authenticated"
)

// CodeLength is the number of characters the verification step wants.
const CodeLength = 6

// AuthFlow tracks one simulated two-step sign-in.
//
// Nothing here is a credential check. The password step only wants both
// fields filled in and the code step only wants six characters. The TOTP
// enrollment exists so the page can show what a real authenticator setup
// looks like.
type AuthFlow struct {
	ID        string
	Step      AuthStep
	Username  string
	SessionID string

	TOTPSecret string
	TOTPURL    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PasswordStepComplete reports whether both fields were filled in. Any
// content counts, including whitespace.
func PasswordStepComplete(username, password string) bool {
	return username != "" && password != ""
}

// CodeStepComplete reports whether code has exactly CodeLength characters.
// Any characters are accepted.
func CodeStepComplete(code string) bool {
	return utf8.RuneCountInString(code) == CodeLength
}

// JoinCodeDigits concatenates the per-box inputs of the code form. Each box
// holds one character, so a box with anything else yields "" and the code
// step will not complete.
func JoinCodeDigits(digits []string) string {
	for _, d := range digits {
		if utf8.RuneCountInString(d) != 1 {
			return ""
		}
	}
	return strings.Join(digits, "")
}

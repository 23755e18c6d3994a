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

// freeEmailDomains lists providers rejected at registration. Only corporate
// addresses may create accounts.
var freeEmailDomains = map[string]struct{}{
	"gmail.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"yahoo.com":      {},
	"icloud.com":     {},
	"aol.com":        {},
	"live.com":       {},
	"mail.com":       {},
	"protonmail.com": {},
	"gmx.com":        {},
	"zoho.com":       {},
	"yandex.com":     {},
}

// IsBusinessEmail reports whether the email's domain is not a known free
// mail provider. The email must already be syntactically valid.
func IsBusinessEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	_, free := freeEmailDomains[domain]
	return !free
}

var (
	lowerRegex  = regexp.MustCompile(`[a-z]`)
	upperRegex  = regexp.MustCompile(`[A-Z]`)
	digitRegex  = regexp.MustCompile(`\d`)
	symbolRegex = regexp.MustCompile(`[@$!%*?&]`)
)

// IsStrongPassword requires at least 8 characters with lowercase, uppercase,
// a digit and one of @$!%*?&.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return lowerRegex.MatchString(password) &&
		upperRegex.MatchString(password) &&
		digitRegex.MatchString(password) &&
		symbolRegex.MatchString(password)
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

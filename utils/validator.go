package utils

import (
	"strings"

	"github.com/badoux/checkmail"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError is a client-caused input failure. The message is meant
// to be shown to the submitter as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// LeadInput is the raw enquiry-form payload.
type LeadInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Course  string `json:"course"`
	Address string `json:"address"`
}

// disposableDomains are providers of throwaway addresses. Matching is an
// exact, case-insensitive comparison on the address domain.
var disposableDomains = map[string]struct{}{
	"mailinator.com":     {},
	"guerrillamail.com":  {},
	"10minutemail.com":   {},
	"tempmail.com":       {},
	"temp-mail.org":      {},
	"yopmail.com":        {},
	"trashmail.com":      {},
	"throwawaymail.com":  {},
	"sharklasers.com":    {},
	"getnada.com":        {},
	"maildrop.cc":        {},
	"dispostable.com":    {},
	"fakeinbox.com":      {},
	"mailnesia.com":      {},
	"mytemp.email":       {},
	"emailondeck.com":    {},
	"spamgourmet.com":    {},
	"mohmal.com":         {},
	"burnermail.io":      {},
	"mail-temporaire.fr": {},
}

// sequentialNumbers are keypad runs nobody actually owns. 9876543210 is a
// legitimately assignable number and is deliberately not in this set.
var sequentialNumbers = map[string]struct{}{
	"0123456789": {},
	"1234567890": {},
	"0987654321": {},
}

// ValidateLead checks a raw enquiry submission and returns the normalized
// form: trimmed name, lowercased email, phone reduced to its 10 digits.
// countryPrefix is the calling code submitters must leave out (e.g. "91").
// extraDisposable supplements the built-in denylist. Pure function, no
// side effects.
func ValidateLead(input LeadInput, countryPrefix string, extraDisposable []string) (LeadInput, error) {
	normalized := LeadInput{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:   strings.TrimSpace(input.Phone),
		Course:  strings.TrimSpace(input.Course),
		Address: strings.TrimSpace(input.Address),
	}

	if err := validate.Struct(normalized); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			field := strings.ToLower(fieldErr.Field())
			return LeadInput{}, &ValidationError{
				Field:   field,
				Message: capitalize(field) + " is required",
			}
		}
	}

	if err := checkmail.ValidateFormat(normalized.Email); err != nil {
		return LeadInput{}, &ValidationError{
			Field:   "email",
			Message: "Please enter a valid email address",
		}
	}

	domain := normalized.Email[strings.LastIndex(normalized.Email, "@")+1:]
	if isDisposableDomain(domain, extraDisposable) {
		return LeadInput{}, &ValidationError{
			Field:   "email",
			Message: "Disposable email addresses are not accepted, please use a permanent one",
		}
	}

	normalized.Phone = digitsOnly(normalized.Phone)
	if err := checkPhone(normalized.Phone, countryPrefix); err != nil {
		return LeadInput{}, err
	}

	return normalized, nil
}

func checkPhone(digits, countryPrefix string) error {
	// A 12-digit number starting with the country code is asked back to
	// the submitter rather than silently rewritten.
	if len(digits) == 12 && countryPrefix != "" && strings.HasPrefix(digits, countryPrefix) {
		return &ValidationError{
			Field:   "phone",
			Message: "Please enter your 10-digit mobile number without the +" + countryPrefix + " country code",
		}
	}
	if len(digits) != 10 {
		return &ValidationError{
			Field:   "phone",
			Message: "Phone number must be exactly 10 digits",
		}
	}
	if allSameDigits(digits) {
		return &ValidationError{
			Field:   "phone",
			Message: "Please enter a valid mobile number",
		}
	}
	if _, ok := sequentialNumbers[digits]; ok {
		return &ValidationError{
			Field:   "phone",
			Message: "Please enter a valid mobile number",
		}
	}
	return nil
}

func isDisposableDomain(domain string, extra []string) bool {
	if _, ok := disposableDomains[domain]; ok {
		return true
	}
	for _, d := range extra {
		if strings.EqualFold(strings.TrimSpace(d), domain) {
			return true
		}
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Package validate holds the input validation shared by the record services.
package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("invalid phone number")
)

var reEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// rePhoneLoose accepts digits with common separators for numbers recorded
// without a country code. Between 10 and 20 significant characters.
var rePhoneLoose = regexp.MustCompile(`^\+?[\s\-\(\)0-9]{10,20}$`)

// Email checks the address shape. It does not verify deliverability.
func Email(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" || !reEmail.MatchString(addr) {
		return ErrInvalidEmail
	}
	return nil
}

// NormalizeEmail lowercases and trims an address for comparison and storage.
func NormalizeEmail(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Phone checks a phone number. Numbers with a leading + must parse as a
// real international number; anything else only has to look like a local
// number since front desks record these by hand.
func Phone(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrInvalidPhone
	}

	if strings.HasPrefix(number, "+") {
		parsed, err := phonenumbers.Parse(number, "")
		if err != nil || !phonenumbers.IsValidNumber(parsed) {
			return ErrInvalidPhone
		}
		return nil
	}

	if !rePhoneLoose.MatchString(number) {
		return ErrInvalidPhone
	}
	return nil
}

package booking

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
	whitespace   = regexp.MustCompile(`\s`)
)

const minCardNumberDigits = 13

// Form carries the guest-entered checkout fields. All values are free-text
// strings; Validate produces per-field messages.
type Form struct {
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	CardNumber     string
	ExpirationDate string
	CVV            string
	BillingAddress string
}

// FieldErrors has one optional error slot per form field so the set of
// validatable fields stays exhaustiveness-checked. An empty value means the
// form is valid.
type FieldErrors struct {
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Email          string `json:"email,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	CardNumber     string `json:"cardNumber,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	BillingAddress string `json:"billingAddress,omitempty"`
}

func (e FieldErrors) HasErrors() bool {
	return e != FieldErrors{}
}

func (e FieldErrors) Count() int {
	count := 0
	for _, msg := range []string{
		e.FirstName, e.LastName, e.Email, e.PhoneNumber,
		e.CardNumber, e.ExpirationDate, e.CVV, e.BillingAddress,
	} {
		if msg != "" {
			count++
		}
	}
	return count
}

// ClearField resets a single field's error while the guest edits it without
// re-validating anything else. Field names follow the wire form (camelCase).
func (e *FieldErrors) ClearField(name string) {
	switch name {
	case "firstName":
		e.FirstName = ""
	case "lastName":
		e.LastName = ""
	case "email":
		e.Email = ""
	case "phoneNumber":
		e.PhoneNumber = ""
	case "cardNumber":
		e.CardNumber = ""
	case "expirationDate":
		e.ExpirationDate = ""
	case "cvv":
		e.CVV = ""
	case "billingAddress":
		e.BillingAddress = ""
	}
}

// Validate checks every field independently and returns the full error set.
// Format checks only run once the required check passed, so an empty field
// carries exactly one "required" message.
func (f Form) Validate() FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(f.FirstName) == "" {
		errs.FirstName = "First name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs.LastName = "Last name is required"
	}

	if strings.TrimSpace(f.Email) == "" {
		errs.Email = "Email is required"
	} else if !emailPattern.MatchString(f.Email) {
		errs.Email = "Please enter a valid email address"
	}

	if strings.TrimSpace(f.PhoneNumber) == "" {
		errs.PhoneNumber = "Phone number is required"
	} else if !phonePattern.MatchString(whitespace.ReplaceAllString(f.PhoneNumber, "")) {
		errs.PhoneNumber = "Please enter a valid phone number"
	}

	if strings.TrimSpace(f.CardNumber) == "" {
		errs.CardNumber = "Card number is required"
	} else if len(whitespace.ReplaceAllString(f.CardNumber, "")) < minCardNumberDigits {
		errs.CardNumber = "Card number must be at least 13 digits"
	}

	if strings.TrimSpace(f.ExpirationDate) == "" {
		errs.ExpirationDate = "Expiration date is required"
	}

	if strings.TrimSpace(f.CVV) == "" {
		errs.CVV = "CVV is required"
	} else if len(f.CVV) < 3 || len(f.CVV) > 4 {
		errs.CVV = "CVV must be 3 or 4 digits"
	}

	if strings.TrimSpace(f.BillingAddress) == "" {
		errs.BillingAddress = "Billing address is required"
	}

	return errs
}

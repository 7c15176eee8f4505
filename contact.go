package clinic

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Field length caps for contact messages.
const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxPhoneLen   = 32
	maxSubjectLen = 200
	maxBodyLen    = 5000
)

// ValidationError reports a contact field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("clinic: %s %s", e.Field, e.Reason)
}

// Validate checks required fields, the email address and length caps.
func (m Message) Validate() error {
	required := []struct{ field, val string }{
		{"first_name", m.FirstName},
		{"email", m.Email},
		{"message", m.Body},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return &ValidationError{Field: r.field, Reason: "is required"}
		}
	}
	caps := []struct {
		field string
		val   string
		max   int
	}{
		{"first_name", m.FirstName, maxNameLen},
		{"last_name", m.LastName, maxNameLen},
		{"email", m.Email, maxEmailLen},
		{"phone", m.Phone, maxPhoneLen},
		{"subject", m.Subject, maxSubjectLen},
		{"message", m.Body, maxBodyLen},
	}
	for _, c := range caps {
		if utf8.RuneCountInString(c.val) > c.max {
			return &ValidationError{Field: c.field, Reason: fmt.Sprintf("must be at most %d characters", c.max)}
		}
	}
	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != m.Email {
		return &ValidationError{Field: "email", Reason: "is not a valid address"}
	}
	for _, r := range m.Phone {
		if !strings.ContainsRune("0123456789+-() ", r) {
			return &ValidationError{Field: "phone", Reason: "may only contain digits, spaces and + - ( )"}
		}
	}
	return nil
}

// ContactForm is the submitted form state echoed back on validation errors.
type ContactForm struct {
	Message
	Error *ValidationError
}

// HasError reports whether field failed validation.
func (f ContactForm) HasError(field string) bool {
	return f.Error != nil && f.Error.Field == field
}

func messageFromForm(get func(string) string) Message {
	return Message{
		FirstName: strings.TrimSpace(get("firstName")),
		LastName:  strings.TrimSpace(get("lastName")),
		Email:     strings.TrimSpace(get("email")),
		Phone:     strings.TrimSpace(get("phone")),
		Subject:   strings.TrimSpace(get("subject")),
		Body:      strings.TrimSpace(get("message")),
	}
}

// contactRedirect is the post-submit location carrying a notice.
func contactRedirect(notice string) string {
	return "/?msg=" + url.QueryEscape(notice) + "#contact"
}

func asValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

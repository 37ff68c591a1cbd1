package common

import (
	"strings"
	"unicode/utf8"
)

// ValidateMessageBody rejects empty and oversized bodies before any store access.
func ValidateMessageBody(body string, maxLen int) error {
	if strings.TrimSpace(body) == "" {
		return ErrBodyLength
	}
	if utf8.RuneCountInString(body) > maxLen {
		return ErrBodyLength
	}
	return nil
}

// ValidateID rejects blank identifiers up front.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingFields
	}
	return nil
}

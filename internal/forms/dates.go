package forms

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/prabinsunar/library-app/internal/entities"
)

var dateLayouts = []string{entities.DateLayoutISO, time.RFC3339}

// parseDate accepts a calendar date or an RFC 3339 timestamp and returns it in UTC.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("invalid date")
}

// optionalDate parses s, treating an empty value as not provided.
func optionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil
	}
	return &t
}

// isDate is an ozzo rule; empty values pass.
func isDate(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := parseDate(s); err != nil {
			return errors.New(message)
		}
		return nil
	})
}

package forms

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError is a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors lists every rejected field in form order. An empty Errors means the form is valid.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether field was rejected.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Messages returns the messages alone, in form order.
func (e Errors) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return msgs
}

// collect flattens ozzo's per-field map into the given field order.
func collect(order []string, errs validation.Errors) Errors {
	errs = filter(errs)
	out := Errors{}
	for _, field := range order {
		if err, ok := errs[field]; ok {
			out = append(out, FieldError{Field: field, Message: err.Error()})
		}
	}
	return out
}

func filter(errs validation.Errors) validation.Errors {
	filtered, ok := errs.Filter().(validation.Errors)
	if !ok {
		return validation.Errors{}
	}
	return filtered
}

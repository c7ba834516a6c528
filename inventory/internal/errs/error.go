package errs

import (
	"errors"
	"strings"

	"github.com/Astemirdum/book-inventory/pkg/validate"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidBook = errors.New("book violates a storage constraint")
)

// ValidationError reports the rejected fields of a submitted form.
// Nothing is persisted when it is returned.
type ValidationError struct {
	Fields []validate.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ByField maps field names to their first message.
func (e *ValidationError) ByField() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := m[f.Field]; !ok {
			m[f.Field] = f.Message
		}
	}
	return m
}

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

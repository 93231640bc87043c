package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("password is incorrect")
)

// Messages shown next to form fields.
const (
	MsgRequired          = "This field is required."
	MsgInvalidChoice     = "Select a valid choice. That choice is not one of the available choices."
	MsgPasswordsMismatch = "Passwords must match!"
	MsgUsernameTaken     = "A user with that username already exists."
	MsgFutureObservation = "Observation date cannot be in the future."
	MsgUserNotFound      = "User does not exist!"
	MsgWrongPassword     = "Password is incorrect!"
)

func MsgNameTaken(entity string) string {
	return entity + " with this Name already exists."
}

// ValidationError collects field and non-field messages for a rejected form.
type ValidationError struct {
	Fields   map[string][]string `json:"fields,omitempty"`
	NonField []string            `json:"non_field,omitempty"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) AddNonField(msg string) {
	e.NonField = append(e.NonField, msg)
}

func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0 && len(e.NonField) == 0
}

// Merge appends other's messages to e.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for field, msgs := range other.Fields {
		for _, m := range msgs {
			e.Add(field, m)
		}
	}
	e.NonField = append(e.NonField, other.NonField...)
}

// Err returns e as an error, or nil when nothing was recorded.
func (e *ValidationError) Err() error {
	if e == nil || e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields)+len(e.NonField))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], " "))
	}
	parts = append(parts, e.NonField...)
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

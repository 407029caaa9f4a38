package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by the remittance core. All of them are recoverable by the
// caller; use errors.Is against these sentinels to branch on the kind.
var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrNoActiveMandate     = errors.New("no active mandate")
	ErrMandateExhausted    = errors.New("mandate exhausted")
	ErrAlreadyInRemittance = errors.New("already in remittance")
	ErrInvalidDocument     = errors.New("invalid document")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidTransition   = errors.New("invalid state transition")
)

// Error decorates an error kind with the offending entity, id and field so the
// caller can render a precise message.
type Error struct {
	Kind   error
	Entity string
	ID     string
	Field  string
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Entity != "" {
		b.WriteString(e.Entity)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.ID != "" {
		fmt.Fprintf(&b, " id=%s", e.ID)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field=%s", e.Field)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Kind }

func NotFound(entity, id string) error {
	return &Error{Kind: ErrNotFound, Entity: entity, ID: id}
}

func Conflict(entity, id, field, detail string) error {
	return &Error{Kind: ErrConflict, Entity: entity, ID: id, Field: field, Detail: detail}
}

func InvalidInput(entity, field, detail string) error {
	return &Error{Kind: ErrInvalidInput, Entity: entity, Field: field, Detail: detail}
}

func InvalidTransition(entity, id, from, to string) error {
	return &Error{Kind: ErrInvalidTransition, Entity: entity, ID: id, Field: "state", Detail: from + " -> " + to}
}

// InvalidDocument names the first violated constraint of a document and, when
// known, the element path where it was found.
func InvalidDocument(path, constraint string) error {
	return &Error{Kind: ErrInvalidDocument, Entity: "document", Field: path, Detail: constraint}
}

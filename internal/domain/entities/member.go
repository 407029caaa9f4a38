package entities

import (
	"strings"
	"time"
)

// MemberStatus is the free-form membership status (soci). There is no enforced
// state machine: any status may follow any other.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusPending  MemberStatus = "pending"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive, MemberStatusPending:
		return true
	}
	return false
}

// Member is a registered association member. Members are never deleted; they are
// switched to inactive instead.
type Member struct {
	ID         string       `json:"id"`
	FirstName  string       `json:"first_name"`
	LastName   string       `json:"last_name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone,omitempty"`
	Address    string       `json:"address,omitempty"`
	City       string       `json:"city,omitempty"`
	PostalCode string       `json:"postal_code,omitempty"`
	DNI        string       `json:"dni,omitempty"`
	Status     MemberStatus `json:"status"`
	JoinDate   time.Time    `json:"join_date"`
	Notes      string       `json:"notes,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (m Member) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(m.FirstName) + " " + strings.TrimSpace(m.LastName))
}

// MemberFilter narrows member listings. Empty fields match everything.
type MemberFilter struct {
	Status MemberStatus
	Search string
}

func (f MemberFilter) Matches(m Member) bool {
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		return strings.Contains(strings.ToLower(m.FullName()), q) || strings.Contains(m.Email, q)
	}
	return true
}

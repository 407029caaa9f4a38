package entities

import (
	"regexp"
	"time"
)

// QuoteState tracks a billable charge from creation to bank feedback.
//
//	pending -> submitted -> collected
//	                     -> returned
//	collected -> returned (late R-transaction)
type QuoteState string

const (
	QuoteStatePending   QuoteState = "pending"
	QuoteStateSubmitted QuoteState = "submitted"
	QuoteStateCollected QuoteState = "collected"
	QuoteStateReturned  QuoteState = "returned"
)

func (s QuoteState) Valid() bool {
	switch s {
	case QuoteStatePending, QuoteStateSubmitted, QuoteStateCollected, QuoteStateReturned:
		return true
	}
	return false
}

// CanTransition reports whether bank feedback may move a quote from s to next.
func (s QuoteState) CanTransition(next QuoteState) bool {
	switch s {
	case QuoteStatePending:
		return next == QuoteStateSubmitted
	case QuoteStateSubmitted:
		return next == QuoteStateCollected || next == QuoteStateReturned
	case QuoteStateCollected:
		return next == QuoteStateReturned
	}
	return false
}

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidPeriod reports whether p is a YYYY-MM billing period.
func ValidPeriod(p string) bool {
	return periodPattern.MatchString(p)
}

// PeriodOf returns the YYYY-MM period containing t.
func PeriodOf(t time.Time) string {
	return t.Format("2006-01")
}

// Quote is one charge against one member for one period. AmountCents is in
// minor currency units. RemittanceID is the claim of the remittance the quote
// belongs to; it is empty while the quote is free to be selected.
type Quote struct {
	ID           string     `json:"id"`
	MemberID     string     `json:"member_id"`
	AmountCents  int64      `json:"amount_cents"`
	Concept      string     `json:"concept"`
	Period       string     `json:"period"`
	State        QuoteState `json:"state"`
	RemittanceID string     `json:"remittance_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UniqueKey is the (member, period, concept) identity of a quote.
func (q Quote) UniqueKey() string {
	return q.MemberID + "|" + q.Period + "|" + q.Concept
}

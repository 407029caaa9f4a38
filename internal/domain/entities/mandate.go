package entities

import "time"

// SequenceType is the SEPA direct-debit sequence of a collection under a mandate.
type SequenceType string

const (
	SequenceFirst     SequenceType = "FRST"
	SequenceRecurring SequenceType = "RCUR"
	SequenceOneOff    SequenceType = "OOFF"
	SequenceFinal     SequenceType = "FNAL"
)

// SequenceOrder is the order in which payment information blocks are rendered.
var SequenceOrder = []SequenceType{SequenceFirst, SequenceRecurring, SequenceOneOff, SequenceFinal}

func (s SequenceType) Valid() bool {
	switch s {
	case SequenceFirst, SequenceRecurring, SequenceOneOff, SequenceFinal:
		return true
	}
	return false
}

// Mandate is a debtor's SEPA direct-debit authorization. Sequence is derived from
// the collection history and is never set by the user.
//
// SingleUse marks a one-off (OOFF) mandate; FinalCollection marks the next
// collection as the last one (FNAL), after which the mandate is deactivated.
type Mandate struct {
	ID              string       `json:"id"`
	MemberID        string       `json:"member_id"`
	IBAN            string       `json:"iban"`
	BIC             string       `json:"bic,omitempty"`
	Reference       string       `json:"mandate_reference"`
	SignatureDate   time.Time    `json:"sign_date"`
	Sequence        SequenceType `json:"sequence"`
	Active          bool         `json:"active"`
	SingleUse       bool         `json:"single_use"`
	FinalCollection bool         `json:"final_collection"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// MandateCollection is one prior use of a mandate, as seen by the sequencer.
type MandateCollection struct {
	RemittanceID string
	QuoteID      string
	Sequence     SequenceType
	QuoteState   QuoteState
}

package response

import (
	"time"

	"socis_remeses/internal/domain/entities"
)

type MandateResponse struct {
	ID              string    `json:"id"`
	MemberID        string    `json:"member_id"`
	IBAN            string    `json:"iban"`
	BIC             string    `json:"bic,omitempty"`
	Reference       string    `json:"mandate_reference"`
	SignatureDate   string    `json:"sign_date"`
	Sequence        string    `json:"sequence"`
	Active          bool      `json:"active"`
	SingleUse       bool      `json:"single_use"`
	FinalCollection bool      `json:"final_collection"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromMandate(m entities.Mandate) MandateResponse {
	return MandateResponse{
		ID:              m.ID,
		MemberID:        m.MemberID,
		IBAN:            m.IBAN,
		BIC:             m.BIC,
		Reference:       m.Reference,
		SignatureDate:   formatDate(m.SignatureDate),
		Sequence:        string(m.Sequence),
		Active:          m.Active,
		SingleUse:       m.SingleUse,
		FinalCollection: m.FinalCollection,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromMandates(ms []entities.Mandate) []MandateResponse {
	out := make([]MandateResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMandate(m))
	}
	return out
}

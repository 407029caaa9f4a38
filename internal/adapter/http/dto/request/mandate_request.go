package request

import (
	"strings"

	"socis_remeses/internal/usecase"
)

type MandateRequest struct {
	MemberID      string `json:"member_id" binding:"required"`
	IBAN          string `json:"iban" binding:"required,iban"`
	BIC           string `json:"bic" binding:"omitempty,bic"`
	Reference     string `json:"mandate_reference" binding:"required,max=35"`
	SignatureDate string `json:"sign_date" binding:"required"`
	Active        *bool  `json:"active"`
	SingleUse     bool   `json:"single_use"`
}

// ToCommand defaults Active to true when omitted.
func (r MandateRequest) ToCommand() (usecase.CreateMandateCommand, error) {
	signed, err := parseDate(r.SignatureDate)
	if err != nil {
		return usecase.CreateMandateCommand{}, err
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return usecase.CreateMandateCommand{
		MemberID:      strings.TrimSpace(r.MemberID),
		IBAN:          r.IBAN,
		BIC:           r.BIC,
		Reference:     r.Reference,
		SignatureDate: signed,
		Active:        active,
		SingleUse:     r.SingleUse,
	}, nil
}

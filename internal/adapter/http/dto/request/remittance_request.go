package request

import (
	"errors"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase"
)

var ErrMissingCreditor = errors.New("creditor is required when no default creditor is configured")

type CreditorRequest struct {
	Name string `json:"name" binding:"required,max=70"`
	IBAN string `json:"iban" binding:"required,iban"`
	BIC  string `json:"bic" binding:"omitempty,bic"`
	ID   string `json:"creditor_id" binding:"required,creditorid"`
}

type RemittanceRequest struct {
	Creditor      *CreditorRequest `json:"creditor"`
	ExecutionDate string           `json:"execution_date" binding:"required"`
	QuoteIDs      []string         `json:"quote_ids" binding:"required,min=1,dive,required"`
}

// ToCommand falls back to def when the request carries no creditor.
func (r RemittanceRequest) ToCommand(def entities.Creditor) (usecase.BuildRemittanceCommand, error) {
	exec, err := parseDate(r.ExecutionDate)
	if err != nil {
		return usecase.BuildRemittanceCommand{}, err
	}
	creditor := def
	if r.Creditor != nil {
		creditor = entities.Creditor{Name: r.Creditor.Name, IBAN: r.Creditor.IBAN, BIC: r.Creditor.BIC, ID: r.Creditor.ID}
	}
	if creditor.ID == "" {
		return usecase.BuildRemittanceCommand{}, ErrMissingCreditor
	}
	return usecase.BuildRemittanceCommand{
		Creditor:      creditor,
		ExecutionDate: exec,
		QuoteIDs:      r.QuoteIDs,
	}, nil
}

package request

import "socis_remeses/internal/usecase"

type QuoteRequest struct {
	MemberID    string `json:"member_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0,lte=99999999999"`
	Concept     string `json:"concept" binding:"required,max=140"`
	Period      string `json:"period" binding:"required,period"`
}

func (r QuoteRequest) ToCommand() usecase.CreateQuoteCommand {
	return usecase.CreateQuoteCommand{
		MemberID:    r.MemberID,
		AmountCents: r.AmountCents,
		Concept:     r.Concept,
		Period:      r.Period,
	}
}

type QuoteOutcomeRequest struct {
	Status string `json:"status" binding:"required,oneof=collected returned"`
}

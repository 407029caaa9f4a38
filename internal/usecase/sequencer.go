package usecase

import (
	"context"
	"errors"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"
)

// NextSequence decides the SEPA sequence type of the next collection under m,
// given the mandate's prior collections in non-cancelled remittances.
//
//   - a collection only establishes the recurring relationship once its quote is
//     collected; a returned FRST leaves the mandate on FRST.
//   - single-use mandates allow one collection that is not returned (OOFF).
//   - a final-flagged mandate with an established relationship yields FNAL.
func NextSequence(m entities.Mandate, history []entities.MandateCollection) (entities.SequenceType, error) {
	if !m.Active {
		return "", &entities.Error{Kind: entities.ErrNoActiveMandate, Entity: "mandate", ID: m.ID, Field: "active"}
	}
	return deriveSequence(m, history)
}

func deriveSequence(m entities.Mandate, history []entities.MandateCollection) (entities.SequenceType, error) {
	if m.SingleUse {
		for _, c := range history {
			if c.QuoteState != entities.QuoteStateReturned {
				return "", &entities.Error{Kind: entities.ErrMandateExhausted, Entity: "mandate", ID: m.ID, Field: "single_use", Detail: "already used by quote " + c.QuoteID}
			}
		}
		return entities.SequenceOneOff, nil
	}

	established := false
	for _, c := range history {
		if c.QuoteState == entities.QuoteStateCollected {
			established = true
			break
		}
	}
	switch {
	case established && m.FinalCollection:
		return entities.SequenceFinal, nil
	case established:
		return entities.SequenceRecurring, nil
	default:
		return entities.SequenceFirst, nil
	}
}

// MandateSequencer gathers a mandate's collection history from the store and
// applies NextSequence to it.
type MandateSequencer struct {
	mandates    interfaces.IMandateRepository
	remittances interfaces.IRemittanceRepository
	quotes      interfaces.IQuoteRepository
}

func NewMandateSequencer(mandates interfaces.IMandateRepository, remittances interfaces.IRemittanceRepository, quotes interfaces.IQuoteRepository) *MandateSequencer {
	return &MandateSequencer{mandates: mandates, remittances: remittances, quotes: quotes}
}

// History lists the collections made under mandateID, skipping the lines of
// excludeRemittanceID (the draft being rebuilt).
func (s *MandateSequencer) History(ctx context.Context, mandateID, excludeRemittanceID string) ([]entities.MandateCollection, error) {
	lines, err := s.remittances.ListLinesByMandateID(ctx, mandateID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.MandateCollection, 0, len(lines))
	for _, l := range lines {
		if excludeRemittanceID != "" && l.RemittanceID == excludeRemittanceID {
			continue
		}
		q, err := s.quotes.GetByID(ctx, l.QuoteID)
		if err != nil {
			return nil, err
		}
		if q.ID == "" {
			continue
		}
		out = append(out, entities.MandateCollection{
			RemittanceID: l.RemittanceID,
			QuoteID:      l.QuoteID,
			Sequence:     l.Sequence,
			QuoteState:   q.State,
		})
	}
	return out, nil
}

// Next returns the sequence type to stamp on a new line under m.
func (s *MandateSequencer) Next(ctx context.Context, m entities.Mandate, excludeRemittanceID string) (entities.SequenceType, error) {
	history, err := s.History(ctx, m.ID, excludeRemittanceID)
	if err != nil {
		return "", err
	}
	return NextSequence(m, history)
}

// Refresh stores on the mandate the sequence its next collection would use. An
// exhausted single-use mandate keeps OOFF.
func (s *MandateSequencer) Refresh(ctx context.Context, mandateID string) (entities.Mandate, error) {
	m, err := s.mandates.GetByID(ctx, mandateID)
	if err != nil {
		return entities.Mandate{}, err
	}
	if m.ID == "" {
		return entities.Mandate{}, entities.NotFound("mandate", mandateID)
	}
	history, err := s.History(ctx, mandateID, "")
	if err != nil {
		return entities.Mandate{}, err
	}
	seq, err := deriveSequence(m, history)
	if errors.Is(err, entities.ErrMandateExhausted) {
		seq = entities.SequenceOneOff
	} else if err != nil {
		return entities.Mandate{}, err
	}
	if seq == m.Sequence {
		return m, nil
	}
	m.Sequence = seq
	return s.mandates.Update(ctx, m)
}

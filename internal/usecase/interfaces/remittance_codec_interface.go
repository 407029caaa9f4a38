package interfaces

import (
	"socis_remeses/internal/domain/entities"
	"time"
)

// IRemittanceCodec renders a remittance as a bank file and parses it back.
// Decode must be the left inverse of Encode and fail with
// entities.ErrInvalidDocument on malformed input.
type IRemittanceCodec interface {
	Encode(doc entities.RemittanceDocument, createdAt time.Time) ([]byte, error)
	Decode(data []byte) (entities.RemittanceDocument, error)
}

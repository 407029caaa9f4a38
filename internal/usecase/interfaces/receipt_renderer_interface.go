package interfaces

import "socis_remeses/internal/domain/entities"

type IReceiptRenderer interface {
	ContentType() string
	Extension() string
	Render(rem entities.Remittance, receipts []entities.Receipt) ([]byte, error)
}

package interfaces

import "context"

// IDocumentStore keeps generated bank files (local disk or S3). Put returns the
// reference stored on the remittance; Get resolves it back to the bytes.
// Delete of a missing document is not an error.
type IDocumentStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) (ref string, err error)
	Get(ctx context.Context, ref string) ([]byte, error)
	Delete(ctx context.Context, ref string) error
}

// Package directory fetches the association's member list (socis) from the
// remote webhook that fronts the membership spreadsheet.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

const maxResponseBytes = 8 << 20

var validate = validator.New()

// response is the webhook payload: {"count": n, "data": [...]}.
type response struct {
	Count *int     `json:"count" validate:"required,min=0"`
	Data  []record `json:"data" validate:"required,dive"`
}

type record struct {
	ID      string `json:"id" validate:"required,max=64"`
	Nom     string `json:"nom" validate:"required,max=100"`
	Cognoms string `json:"cognoms" validate:"max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Tel     string `json:"tel,omitempty" validate:"max=32"`
	Status  string `json:"status" validate:"required,oneof=actiu baixa pendent"`
}

var statuses = map[string]entities.MemberStatus{
	"actiu":   entities.MemberStatusActive,
	"baixa":   entities.MemberStatusInactive,
	"pendent": entities.MemberStatusPending,
}

// WebhookClient implements IMemberDirectory over an HTTP POST webhook.
type WebhookClient struct {
	url    string
	client *http.Client
}

var _ interfaces.IMemberDirectory = (*WebhookClient)(nil)

func NewWebhookClient(url string) *WebhookClient {
	return &WebhookClient{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchMembers posts to the webhook and decodes the member list. Anything that
// does not match the expected schema is an ErrInvalidDocument; an empty list
// is only returned when the directory really is empty.
func (c *WebhookClient) FetchMembers(ctx context.Context) ([]entities.Member, error) {
	if c == nil || c.url == "" {
		return nil, errors.New("member directory: empty url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("member directory: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("member directory: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("member directory: %w", err)
	}
	if len(body) > maxResponseBytes {
		return nil, entities.InvalidDocument("", "response too large")
	}
	return decode(body)
}

func decode(body []byte) ([]entities.Member, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	var payload response
	if err := dec.Decode(&payload); err != nil {
		return nil, entities.InvalidDocument("", "malformed json: "+err.Error())
	}
	if dec.More() {
		return nil, entities.InvalidDocument("", "trailing data after json document")
	}
	if err := validate.Struct(payload); err != nil {
		return nil, validationError(err)
	}
	if *payload.Count != len(payload.Data) {
		return nil, entities.InvalidDocument("count", fmt.Sprintf("count %d does not match %d records", *payload.Count, len(payload.Data)))
	}

	seen := make(map[string]bool, len(payload.Data))
	out := make([]entities.Member, 0, len(payload.Data))
	for i, r := range payload.Data {
		id := strings.TrimSpace(r.ID)
		if seen[id] {
			return nil, entities.InvalidDocument(fmt.Sprintf("data[%d].id", i), "duplicate id "+id)
		}
		seen[id] = true
		out = append(out, entities.Member{
			ID:        id,
			FirstName: strings.TrimSpace(r.Nom),
			LastName:  strings.TrimSpace(r.Cognoms),
			Email:     strings.ToLower(strings.TrimSpace(r.Email)),
			Phone:     strings.TrimSpace(r.Tel),
			Status:    statuses[r.Status],
		})
	}
	return out, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		// Namespace is "response.Data[3].Email"; report it in wire terms.
		path := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "response."))
		return entities.InvalidDocument(path, "failed "+fe.Tag())
	}
	return entities.InvalidDocument("", err.Error())
}

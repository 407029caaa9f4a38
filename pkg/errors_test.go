package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatal("expected AppError to unwrap to its cause")
	}
	if got := err.ToHTTPError(); got.Code != "INTERNAL_ERROR" || got.Field != "" {
		t.Fatalf("unexpected http error %+v", got)
	}

	base := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	withField := base.WithField("iban")
	if base.Field != "" || withField.ToHTTPError().Field != "iban" || withField.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("WithField must copy: base=%+v copy=%+v", base, withField)
	}
}

package handlers

import (
	"errors"
	"net/http"
	"testing"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{entities.InvalidInput("quote", "period", "bad"), http.StatusBadRequest},
		{entities.NotFound("quote", "q1"), http.StatusNotFound},
		{entities.Conflict("member", "m1", "email", "taken"), http.StatusConflict},
		{&entities.Error{Kind: entities.ErrAlreadyInRemittance, ID: "q1"}, http.StatusConflict},
		{entities.InvalidTransition("remittance", "R1", "generated", "draft"), http.StatusConflict},
		{&entities.Error{Kind: entities.ErrNoActiveMandate, ID: "m1"}, http.StatusUnprocessableEntity},
		{&entities.Error{Kind: entities.ErrMandateExhausted, ID: "md1"}, http.StatusUnprocessableEntity},
		{entities.InvalidDocument("GrpHdr/NbOfTxs", "mismatch"), http.StatusUnprocessableEntity},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapDomainError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}

func TestMapDomainError_Field(t *testing.T) {
	got := mapDomainError(entities.InvalidDocument("PmtInf[1]/CtrlSum", "mismatch")).ToHTTPError()
	if got.Code != "INVALID_DOCUMENT" || got.Field != "PmtInf[1]/CtrlSum" {
		t.Fatalf("unexpected http error %+v", got)
	}
	got = mapDomainError(&entities.Error{Kind: entities.ErrNoActiveMandate, Entity: "member", ID: "m7"}).ToHTTPError()
	if got.Field != "m7" {
		t.Fatalf("expected id as field, got %+v", got)
	}
}

func TestMapMemberError(t *testing.T) {
	if got := mapMemberError(usecase.ErrDirectoryNotConfigured); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", got.HTTPStatus)
	}
}

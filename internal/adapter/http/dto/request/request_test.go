package request

import (
	"errors"
	"testing"
	"time"

	"socis_remeses/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		err  bool
	}{
		{"", time.Time{}, false},
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"2024-03-05T10:00:00+02:00", time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), false},
		{"05/03/2024", time.Time{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseDate(tc.in)
			if (err != nil) != tc.err || !got.Equal(tc.want) {
				t.Fatalf("parseDate(%q) = %v, %v", tc.in, got, err)
			}
		})
	}
}

func TestRemittanceRequest_ToCommand(t *testing.T) {
	def := entities.Creditor{Name: "Associacio", IBAN: "ES9121000418450200051332", ID: "ES26000G12345678"}

	t.Run("uses default creditor", func(t *testing.T) {
		cmd, err := RemittanceRequest{ExecutionDate: "2024-03-05", QuoteIDs: []string{"q1"}}.ToCommand(def)
		if err != nil || cmd.Creditor != def {
			t.Fatalf("unexpected command %+v err=%v", cmd, err)
		}
	})

	t.Run("no creditor at all", func(t *testing.T) {
		_, err := RemittanceRequest{ExecutionDate: "2024-03-05", QuoteIDs: []string{"q1"}}.ToCommand(entities.Creditor{})
		if !errors.Is(err, ErrMissingCreditor) {
			t.Fatalf("expected ErrMissingCreditor, got %v", err)
		}
	})
}

func TestMandateRequest_DefaultsActive(t *testing.T) {
	cmd, err := MandateRequest{MemberID: " m1 ", IBAN: "x", Reference: "MND-1", SignatureDate: "2024-01-10"}.ToCommand()
	if err != nil || !cmd.Active || cmd.MemberID != "m1" {
		t.Fatalf("unexpected command %+v err=%v", cmd, err)
	}
}

func TestRegisterValidators(t *testing.T) {
	RegisterValidators()

	valid := QuoteRequest{MemberID: "m1", AmountCents: 1500, Concept: "Quota", Period: "2024-03"}
	if err := binding.Validator.ValidateStruct(valid); err != nil {
		t.Fatalf("expected valid quote request, got %v", err)
	}
	invalid := valid
	invalid.Period = "2024-13"
	if err := binding.Validator.ValidateStruct(invalid); err == nil {
		t.Fatal("expected period validation to fail")
	}
	largest := valid
	largest.AmountCents = 99999999999
	if err := binding.Validator.ValidateStruct(largest); err != nil {
		t.Fatalf("expected the largest amount to pass, got %v", err)
	}
	largest.AmountCents++
	if err := binding.Validator.ValidateStruct(largest); err == nil {
		t.Fatal("expected amount above 999999999.99 to fail")
	}

	creditor := CreditorRequest{Name: "A", IBAN: "ES9121000418450200051333", ID: "ES26000G12345678"}
	if err := binding.Validator.ValidateStruct(creditor); err == nil {
		t.Fatal("expected iban validation to fail on a bad check digit")
	}
}

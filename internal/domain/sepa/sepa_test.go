package sepa

import (
	"errors"
	"testing"
)

func TestValidateIBAN(t *testing.T) {
	cases := []struct {
		name string
		iban string
		want error
	}{
		{name: "spanish", iban: "ES9121000418450200051332"},
		{name: "german with spaces", iban: "de89 3704 0044 0532 0130 00"},
		{name: "uk", iban: "GB82WEST12345698765432"},
		{name: "bad checksum", iban: "ES9121000418450200051333", want: ErrIBANChecksum},
		{name: "wrong country length", iban: "ES91210004184502000513", want: ErrIBANLength},
		{name: "too short", iban: "ES91", want: ErrIBANLength},
		{name: "bad characters", iban: "ES91-2100-0418-4502-0005", want: ErrIBANFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateIBAN(tc.iban)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestIBANCheckDigits(t *testing.T) {
	if got := IBANCheckDigits("ES", "21000418450200051332"); got != "91" {
		t.Fatalf("expected 91 got %s", got)
	}
}

func TestValidateBIC(t *testing.T) {
	for _, bic := range []string{"CAIXESBBXXX", "BSCHESMM", "deutdeff"} {
		if err := ValidateBIC(bic); err != nil {
			t.Fatalf("expected %s valid, got %v", bic, err)
		}
	}
	for _, bic := range []string{"", "CAIX", "CAIXESBBXX", "1AIXESBB"} {
		if err := ValidateBIC(bic); !errors.Is(err, ErrBICFormat) {
			t.Fatalf("expected %q invalid, got %v", bic, err)
		}
	}
}

func TestValidateCreditorID(t *testing.T) {
	t.Run("german test id", func(t *testing.T) {
		if err := ValidateCreditorID("DE98ZZZ09999999999"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("spanish id with computed digits", func(t *testing.T) {
		digits := CreditorIDCheckDigits("ES", "G12345678")
		if digits != "26" {
			t.Fatalf("expected 26 got %s", digits)
		}
		if err := ValidateCreditorID("ES" + digits + "000G12345678"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("business code ignored by checksum", func(t *testing.T) {
		if err := ValidateCreditorID("ES26ABCG12345678"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		if err := ValidateCreditorID("ES27000G12345678"); !errors.Is(err, ErrCreditorIDChecksum) {
			t.Fatalf("expected checksum error, got %v", err)
		}
	})

	t.Run("format", func(t *testing.T) {
		if err := ValidateCreditorID("E1"); !errors.Is(err, ErrCreditorIDFormat) {
			t.Fatalf("expected format error, got %v", err)
		}
	})
}

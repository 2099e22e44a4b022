package solidgate

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMinorUnits(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		amount   string
		currency string
		want     int64
	}{
		"usd":        {amount: "10.20", currency: "USD", want: 1020},
		"usd whole":  {amount: "7", currency: "USD", want: 700},
		"jpy":        {amount: "500", currency: "JPY", want: 500},
		"lower case": {amount: "12", currency: "jpy", want: 12},
		"zero":       {amount: "0", currency: "EUR", want: 0},
	}
	for name, tc := range cases {
		got, err := MinorUnits(decimal.RequireFromString(tc.amount), tc.currency)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %d got %d", name, tc.want, got)
		}
	}
}

func TestMinorUnitsRejects(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		amount   string
		currency string
	}{
		"negative":       {amount: "-1", currency: "USD"},
		"sub cent":       {amount: "10.205", currency: "USD"},
		"fractional jpy": {amount: "1.5", currency: "JPY"},
	}
	for name, tc := range cases {
		_, err := MinorUnits(decimal.RequireFromString(tc.amount), tc.currency)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected validation error got %v", name, err)
		}
	}
}

func TestMajorUnits(t *testing.T) {
	t.Parallel()

	if got := MajorUnits(1020, "USD"); got != "10.20" {
		t.Fatalf("expected 10.20 got %s", got)
	}
	if got := MajorUnits(500, "JPY"); got != "500" {
		t.Fatalf("expected 500 got %s", got)
	}
	minor, err := MinorUnits(decimal.RequireFromString(MajorUnits(99, "EUR")), "EUR")
	if err != nil || minor != 99 {
		t.Fatalf("round trip: got %d err=%v", minor, err)
	}
}

package solidgate

import "testing"

func TestIsDefaultCancellationCode(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"8.01": true,
		"8.03": true,
		"8.14": true,
		"8.15": true,
		"9.99": false,
		"8.1":  false,
		"":     false,
	}
	for code, want := range cases {
		if got := IsDefaultCancellationCode(code); got != want {
			t.Fatalf("IsDefaultCancellationCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestDefaultCancelCodesReturnsCopy(t *testing.T) {
	t.Parallel()

	codes := DefaultCancelCodes()
	if len(codes) != 15 {
		t.Fatalf("expected 15 codes got %d", len(codes))
	}
	codes[0] = "0.00"
	if DefaultCancelCodes()[0] != CancelCodeCardBrandNotSupported {
		t.Fatalf("DefaultCancelCodes exposed its backing slice")
	}
	if CancelCodeDisputeReceived.String() != "8.03" {
		t.Fatalf("unexpected string %s", CancelCodeDisputeReceived)
	}
}

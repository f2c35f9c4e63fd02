package calculator

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"adder/internal/calculation"
)

func TestNumberMarshalJSON(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 4, want: `4`},
		{in: 1.5, want: `1.5`},
		{in: math.Inf(1), want: `"+Inf"`},
		{in: math.Inf(-1), want: `"-Inf"`},
		{in: math.NaN(), want: `"NaN"`},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got, err := json.Marshal(Number(tc.in))
			if err != nil {
				t.Fatalf("marshalling %g: %v", tc.in, err)
			}
			if string(got) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestNumberUnmarshalJSONAcceptsSpecialValues(t *testing.T) {
	var n Number
	if err := json.Unmarshal([]byte(`"-Inf"`), &n); err != nil {
		t.Fatalf("unmarshalling: %v", err)
	}
	if !math.IsInf(float64(n), -1) {
		t.Fatalf("expected -Inf, got %g", n)
	}

	if err := json.Unmarshal([]byte(`"seven"`), &n); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
}

func TestSetSignRequestAcceptsBothPayloads(t *testing.T) {
	for _, body := range []string{`"x"`, ` {"sign":"x"} `, `"multiply"`} {
		t.Run(body, func(t *testing.T) {
			var req SetSignRequest
			if err := json.Unmarshal([]byte(body), &req); err != nil {
				t.Fatalf("unmarshalling %s: %v", body, err)
			}
			if req.Sign != calculation.Times {
				t.Fatalf("expected x, got %s", req.Sign)
			}
		})
	}
}

func TestSetSignRequestErrors(t *testing.T) {
	var req SetSignRequest

	if err := json.Unmarshal([]byte(`null`), &req); !errors.Is(err, errMissingSign) {
		t.Fatalf("expected errMissingSign for null, got %v", err)
	}
	if err := json.Unmarshal([]byte(`{"sign":"?"}`), &req); !errors.Is(err, calculation.ErrUnknownSign) {
		t.Fatalf("expected ErrUnknownSign, got %v", err)
	}
}

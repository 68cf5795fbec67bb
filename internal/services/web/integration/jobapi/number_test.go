package jobapi

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw   string
		want  float64
		valid bool
	}{
		{raw: "50000", want: 50000, valid: true},
		{raw: " 2.5 ", want: 2.5, valid: true},
		{raw: "1e3", want: 1000, valid: true},
		{raw: "abc", valid: false},
		{raw: "   ", want: 0, valid: true},
		{raw: ".5", want: 0.5, valid: true},
		{raw: "7.", want: 7, valid: true},
		{raw: "0x10", want: 16, valid: true},
		{raw: "0B11", want: 3, valid: true},
		{raw: "0o17", want: 15, valid: true},
		{raw: "1_000", valid: false},
		{raw: "0x1_0", valid: false},
		{raw: "-0x10", valid: false},
		{raw: "0x-1", valid: false},
		{raw: "0x", valid: false},
		{raw: "0x1.8p1", valid: false},
		{raw: "inf", valid: false},
		{raw: "NaN", valid: false},
		{raw: "12px", valid: false},
	}
	for _, tc := range tests {
		got := ParseNumber(tc.raw)
		if got.Valid() != tc.valid {
			t.Fatalf("ParseNumber(%q).Valid() = %v, want %v", tc.raw, got.Valid(), tc.valid)
		}
		if tc.valid && float64(got) != tc.want {
			t.Fatalf("ParseNumber(%q) = %v, want %v", tc.raw, got, tc.want)
		}
		if !tc.valid && !math.IsNaN(float64(got)) {
			t.Fatalf("ParseNumber(%q) = %v, want NaN", tc.raw, got)
		}
	}
}

func TestParseNumberInfinity(t *testing.T) {
	t.Parallel()

	for raw, sign := range map[string]int{"Infinity": 1, "+Infinity": 1, "-Infinity": -1, "1e999": 1} {
		if got := ParseNumber(raw); !math.IsInf(float64(got), sign) {
			t.Fatalf("ParseNumber(%q) = %v, want Inf(%d)", raw, got, sign)
		}
	}
}

func TestNumberMarshalJSONNegativeZero(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal(ParseNumber("-0"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != "0" {
		t.Fatalf("Marshal(-0) = %s, want 0", got)
	}
	if s := ParseNumber("-0").String(); s != "0" {
		t.Fatalf("String(-0) = %q, want 0", s)
	}
}

func TestNumberMarshalJSON(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}{A: 50000, B: ParseNumber("x"), C: Number(math.Inf(1))})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != `{"a":50000,"b":null,"c":null}` {
		t.Fatalf("Marshal() = %s", got)
	}
}

func TestNumberUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var v struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":12,"b":"34","c":null}`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.A != 12 || v.B != 34 || v.C.Valid() {
		t.Fatalf("decoded = %+v", v)
	}
	if err := json.Unmarshal([]byte(`{"a":true}`), &v); err == nil {
		t.Fatalf("expected error for boolean number")
	}
}

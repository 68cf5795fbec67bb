package jobapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Number is a JSON number that tolerates unparsable input.
//
// Values that fail to parse hold NaN and encode as JSON null.
type Number float64

// decimalLiteral is the unprefixed numeric form browsers accept for
// Number(text): no digit separators, no hex floats.
var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

var radixPrefixes = map[string]int{"0x": 16, "0o": 8, "0b": 2}

// ParseNumber coerces raw form text to a Number the way a browser's
// Number(text) does. Blank text is zero and unparsable text yields NaN.
func ParseNumber(raw string) Number {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return Number(math.Inf(1))
	case "-Infinity":
		return Number(math.Inf(-1))
	}
	if len(raw) > 2 {
		if base, ok := radixPrefixes[strings.ToLower(raw[:2])]; ok {
			return parseRadix(raw[2:], base)
		}
	}
	if !decimalLiteral.MatchString(raw) {
		return Number(math.NaN())
	}
	// Out-of-range input parses to ±Inf, which is also what a browser yields.
	value, _ := strconv.ParseFloat(raw, 64)
	return Number(value)
}

func parseRadix(digits string, base int) Number {
	value, ok := new(big.Int).SetString(digits, base)
	if !ok || strings.ContainsAny(digits[:1], "+-") {
		return Number(math.NaN())
	}
	f, _ := new(big.Float).SetInt(value).Float64()
	return Number(f)
}

// Valid reports whether n is a finite number.
func (n Number) Valid() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String formats n without trailing zeros; invalid numbers render empty.
func (n Number) String() string {
	if !n.Valid() {
		return ""
	}
	return formatNumber(n)
}

// MarshalJSON encodes invalid numbers as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return []byte("null"), nil
	}
	return []byte(formatNumber(n)), nil
}

// formatNumber drops the sign of negative zero.
func formatNumber(n Number) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number(math.NaN())
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*n = ParseNumber(raw)
		return nil
	}
	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("jobapi: invalid number %q: %w", data, err)
	}
	*n = Number(value)
	return nil
}

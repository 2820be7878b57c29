package coin

import (
	"strings"
	"testing"

	"github.com/oruchain/sendtx/errors"
)

func TestParseDecomposesAmountAndToken(t *testing.T) {
	cases := []struct {
		in     string
		amount string
		denom  string
	}{
		{"1000BTC", "1000", "BTC"},
		{"1000ERC-20", "1000", "ERC-20"},
		{"239btc", "239", "btc"},
		{"1oru", "1", "oru"},
		{"5TOKEN-2-3", "5", "TOKEN-2-3"},
	}
	for _, tc := range cases {
		c, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if c.Amount.Dec() != tc.amount || c.Denom != tc.denom {
			t.Fatalf("Parse(%q) = (%s, %q), want (%s, %q)", tc.in, c.Amount.Dec(), c.Denom, tc.amount, tc.denom)
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{
		"1000234",  // digits only, no token
		"239btc!",  // trailing character outside the charset
		"btc1000",  // token before amount
		"1000 btc", // interior space
		"-5btc",    // signed amount
		"10.5btc",  // fractional amount
		"",
		"1000erc-",  // dangling dash
		"1000erc-x", // dash must be followed by digits
	} {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q) accepted malformed input", in)
		}
		if !errors.IsKind(err, errors.KindValidation) {
			t.Fatalf("Parse(%q) returned %v, want a validation error", in, err)
		}
		if !strings.Contains(err.Error(), "malformed") {
			t.Fatalf("Parse(%q) error %q does not name the malformed field", in, err)
		}
	}
}

func TestParseRejectsZeroAmount(t *testing.T) {
	for _, in := range []string{"0oru", "000oru"} {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q) accepted a zero amount", in)
		}
		if !strings.Contains(err.Error(), "greater than zero") {
			t.Fatalf("Parse(%q) error %q does not explain the zero rejection", in, err)
		}
	}
}

func TestParseRejectsOverflowAmount(t *testing.T) {
	// 2^256 does not fit the amount type.
	in := "115792089237316195423570985008687907853269984665640564039457584007913129639936oru"
	if _, err := Parse(in); err == nil {
		t.Fatalf("Parse accepted an amount beyond 256 bits")
	}
}

func TestParseIsDeterministic(t *testing.T) {
	a, err1 := Parse("42oru")
	b, err2 := Parse("42oru")
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if a.String() != b.String() {
		t.Fatalf("repeated parse diverged: %s vs %s", a, b)
	}
}

func TestNewValidatesSeparatedFields(t *testing.T) {
	c, err := New("250", "uoru")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if c.String() != "250uoru" {
		t.Fatalf("unexpected coin %s", c)
	}

	if _, err := New("250", "u$ru"); err == nil {
		t.Fatalf("accepted denomination outside the charset")
	} else if !strings.Contains(err.Error(), "invalid characters") {
		t.Fatalf("charset error %q does not name invalid characters", err)
	}
	if _, err := New("x250", "uoru"); err == nil {
		t.Fatalf("accepted non-numeric amount")
	}
	if _, err := New("0", "uoru"); err == nil {
		t.Fatalf("accepted zero amount")
	}
}

func TestValidateDenomAllowsRestrictedCharset(t *testing.T) {
	for _, denom := range []string{"uoru", "ERC-20", "wrapped_oru", "A1"} {
		if err := ValidateDenom(denom); err != nil {
			t.Fatalf("ValidateDenom(%q) = %v", denom, err)
		}
	}
	for _, denom := range []string{"", "u$ru", "é", "u oru"} {
		if err := ValidateDenom(denom); err == nil {
			t.Fatalf("ValidateDenom(%q) accepted invalid input", denom)
		}
	}
}

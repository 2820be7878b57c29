// Package coin parses and validates user-supplied token amounts.
package coin

import (
	"fmt"
	"regexp"

	"github.com/holiman/uint256"
	"golang.org/x/text/unicode/norm"

	"github.com/oruchain/sendtx/errors"
)

// Field names used in validation messages
const (
	AmountField = "amount"
	TokenField  = "token"
)

var (
	// combinedPattern accepts digits immediately followed by a token
	// symbol: letters, optionally extended by runs of "-<digits>"
	// (erc-20 style suffixes).
	combinedPattern = regexp.MustCompile(`^(\d+)([A-Za-z]+(?:-\d+)*)$`)

	// denomPattern is the charset allowed for a token denomination
	// supplied as a separate field.
	denomPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Coin is one validated amount/denomination pair.
type Coin struct {
	Denom  string
	Amount *uint256.Int
}

// Parse decomposes a combined "amount+token" argument such as "100oru"
// or "1000ERC-20" into a Coin. The whole string must match the combined
// pattern; anything else is rejected before the parts are inspected.
func Parse(raw string) (Coin, error) {
	s := norm.NFC.String(raw)
	m := combinedPattern.FindStringSubmatch(s)
	if m == nil {
		return Coin{}, errors.Errorf(errors.KindValidation,
			"malformed %s/%s %q: want digits immediately followed by a token symbol", AmountField, TokenField, raw)
	}
	return New(m[1], m[2])
}

// New builds a Coin from already-separated amount and denomination
// fields, applying the same rules as Parse.
func New(amount, denom string) (Coin, error) {
	value, err := uint256.FromDecimal(norm.NFC.String(amount))
	if err != nil {
		return Coin{}, errors.Errorf(errors.KindValidation,
			"%s %q is not an unsigned integer: %v", AmountField, amount, err)
	}
	if value.IsZero() {
		return Coin{}, errors.Errorf(errors.KindValidation,
			"%s must be greater than zero", AmountField)
	}
	if err := ValidateDenom(denom); err != nil {
		return Coin{}, err
	}
	return Coin{Denom: denom, Amount: value}, nil
}

// ValidateDenom checks a denomination against the restrictive charset
// (letters, digits, "-", "_").
func ValidateDenom(denom string) error {
	if !denomPattern.MatchString(norm.NFC.String(denom)) {
		return errors.Errorf(errors.KindValidation,
			"%s %q contains invalid characters", TokenField, denom)
	}
	return nil
}

// String renders the coin the way the user typed it, amount first.
func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount.Dec(), c.Denom)
}

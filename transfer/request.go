// Package transfer validates transfer arguments and drives one
// transfer from raw input to an on-chain receipt.
package transfer

import (
	"regexp"

	"golang.org/x/text/unicode/norm"

	"github.com/oruchain/sendtx/coin"
	"github.com/oruchain/sendtx/errors"
)

// AddressField names the destination argument in validation messages.
const AddressField = "address"

// addressPattern is the restrictive charset a destination address must
// match. Checksum validation is the gateway's job; this stage only
// refuses input that cannot be an address on any supported chain.
var addressPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Request is one fully validated transfer. It is only ever constructed
// through NewRequest or NewRequestFromCoin, so holding a Request means
// every field already passed validation.
type Request struct {
	Coin        coin.Coin
	Destination string
}

// NewRequest validates the combined "amount+token" argument and the
// destination address, in that order. The first failing field aborts
// validation, nothing is returned half-checked.
func NewRequest(amountToken, address string) (Request, error) {
	c, err := coin.Parse(amountToken)
	if err != nil {
		return Request{}, err
	}
	dest, err := validateAddress(address)
	if err != nil {
		return Request{}, err
	}
	return Request{Coin: c, Destination: dest}, nil
}

// NewRequestFromCoin builds a Request from an already-separated amount
// and denomination, for callers that do not use the combined form.
func NewRequestFromCoin(amount, denom, address string) (Request, error) {
	c, err := coin.New(amount, denom)
	if err != nil {
		return Request{}, err
	}
	dest, err := validateAddress(address)
	if err != nil {
		return Request{}, err
	}
	return Request{Coin: c, Destination: dest}, nil
}

func validateAddress(address string) (string, error) {
	s := norm.NFC.String(address)
	if !addressPattern.MatchString(s) {
		return "", errors.Errorf(errors.KindValidation,
			"invalid %s format %q: only letters, digits, - and _ are allowed", AddressField, address)
	}
	return s, nil
}

package chain

import (
	"github.com/oruchain/sendtx/coin"
)

// toWireCoin maps a validated coin onto the gateway's wire shape. The
// mapping is purely structural, the amount travels as a decimal string.
func toWireCoin(c coin.Coin) wireCoin {
	return wireCoin{
		Denom:  c.Denom,
		Amount: c.Amount.Dec(),
	}
}

func toWireCoins(coins []coin.Coin) []wireCoin {
	out := make([]wireCoin, len(coins))
	for i, c := range coins {
		out[i] = toWireCoin(c)
	}
	return out
}

package chain

// JSON-RPC methods exposed by the gateway.
const (
	methodHealthCheck = "health.check"
	methodAllBalances = "bank.allbalances"
	methodGetAccount  = "account.getaccount"
	methodSendCoins   = "tx.sendcoins"
)

// Signer provides the sending address and signature capability for one
// transaction. Satisfied by wallet.Wallet.
type Signer interface {
	Address() string
	PubKey() string
	Sign(msg []byte) (string, error)
}

// Balance is one denomination's holdings as reported by the gateway.
type Balance struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Account is the gateway's view of an address.
type Account struct {
	Address string `json:"address"`
	Nonce   uint64 `json:"nonce"`
}

// Receipt is the chain's acknowledgment of a submitted transaction.
// Code zero means the transfer was applied; any other code is a
// chain-level rejection.
type Receipt struct {
	Code   uint32 `json:"code"`
	Height int64  `json:"height"`
	TxHash string `json:"tx_hash"`
	RawLog string `json:"raw_log,omitempty"`
}

// --- Params/Results exchanged with the gateway ---

type healthCheckResponse struct {
	ChainID     string `json:"chain_id"`
	NodeID      string `json:"node_id"`
	BlockHeight int64  `json:"block_height"`
	Status      string `json:"status"`
}

type allBalancesRequest struct {
	Address string `json:"address"`
}

type allBalancesResponse struct {
	Balances []Balance `json:"balances"`
}

type getAccountRequest struct {
	Address string `json:"address"`
}

type wireCoin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type txMsgParams struct {
	Sender    string     `json:"sender"`
	Recipient string     `json:"recipient"`
	Coins     []wireCoin `json:"coins"`
	Nonce     uint64     `json:"nonce"`
	Timestamp uint64     `json:"timestamp"`
	Memo      string     `json:"memo,omitempty"`
	PubKey    string     `json:"pub_key"`
}

type sendCoinsParams struct {
	TxMsg     txMsgParams `json:"tx_msg"`
	Signature string      `json:"signature"`
}

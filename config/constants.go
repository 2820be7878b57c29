package config

const (
	DefaultConfigPath       = "sendtx.yml"
	DefaultClientConfigPath = "client.ini"
	DefaultWalletPath       = "wallet/wallet.key"
	DefaultJournalPath      = "journal.db"
	DefaultLogFile          = "logs/sendtx.log"
	DefaultNetworkID        = "oru-testnet"

	DefaultConnectTimeoutMs = 5000
	DefaultCallTimeoutMs    = 10000
)

var DefaultNetworks = []NetworkConfig{
	{ID: "oru-testnet", ChainID: "orutest-3", Endpoint: "https://gateway.testnet.oru.network/rpc", Prefix: "oru"},
	{ID: "oru-mainnet", ChainID: "oru-1", Endpoint: "https://gateway.oru.network/rpc", Prefix: "oru"},
}

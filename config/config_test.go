package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oruchain/sendtx/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppConfig(t *testing.T) {
	path := writeFile(t, "sendtx.yml", `
config:
  default_network: oru-mainnet
  networks:
    - id: oru-mainnet
      chain_id: oru-1
      endpoint: https://gateway.oru.network/rpc
      prefix: oru
  wallet:
    env: SENDTX_MNEMONIC
  log:
    file: logs/test.log
    max_size_mb: 5
`)
	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "oru-mainnet", cfg.DefaultNetwork)
	require.Len(t, cfg.Networks, 1)
	assert.Equal(t, "oru-1", cfg.Networks[0].ChainID)
	assert.Equal(t, "SENDTX_MNEMONIC", cfg.Wallet.Env)
	assert.Empty(t, cfg.Wallet.File, "env source must not pull in the default file")
	assert.Equal(t, "logs/test.log", cfg.Log.File)
	assert.Equal(t, DefaultJournalPath, cfg.JournalPath)

	net, err := cfg.Network("oru-mainnet")
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.oru.network/rpc", net.Endpoint)

	_, err = cfg.Network("nope")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUsage))
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultNetworkID, cfg.DefaultNetwork)
	assert.Equal(t, DefaultWalletPath, cfg.Wallet.File)
	net, err := cfg.Network(DefaultNetworkID)
	require.NoError(t, err)
	assert.Equal(t, "orutest-3", net.ChainID)
}

func TestLoadRPCConfig(t *testing.T) {
	path := writeFile(t, "client.ini", `
[rpc]
connect_timeout_ms = 2500
call_timeout_ms = 7000

[journal]
disabled = true
`)
	rpcCfg, err := LoadRPCConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2500, rpcCfg.ConnectTimeoutMs)
	assert.Equal(t, 7000, rpcCfg.CallTimeoutMs)

	journalCfg, err := LoadJournalConfig(path)
	require.NoError(t, err)
	assert.True(t, journalCfg.Disabled)
}

func TestMissingTuningFileFallsBackToDefaults(t *testing.T) {
	rpcCfg, err := LoadRPCConfig(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConnectTimeoutMs, rpcCfg.ConnectTimeoutMs)
	assert.Equal(t, DefaultCallTimeoutMs, rpcCfg.CallTimeoutMs)

	journalCfg, err := LoadJournalConfig(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.False(t, journalCfg.Disabled)
}

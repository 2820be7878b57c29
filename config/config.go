package config

import (
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/oruchain/sendtx/errors"
)

// LoadAppConfig reads and parses the sendtx.yml file
func LoadAppConfig(path string) (*AppConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		return nil, err
	}
	cfg := cfgFile.Config
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the compiled-in configuration used when no config
// file is present.
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *AppConfig) applyDefaults() {
	if len(c.Networks) == 0 {
		c.Networks = append(c.Networks, DefaultNetworks...)
	}
	if c.DefaultNetwork == "" {
		c.DefaultNetwork = DefaultNetworkID
	}
	if c.Wallet.File == "" && c.Wallet.Env == "" {
		c.Wallet.File = DefaultWalletPath
	}
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}
	if c.JournalPath == "" {
		c.JournalPath = DefaultJournalPath
	}
}

// Network returns the configured network with the given id.
func (c *AppConfig) Network(id string) (*NetworkConfig, error) {
	for i := range c.Networks {
		if c.Networks[i].ID == id {
			return &c.Networks[i], nil
		}
	}
	return nil, errors.Errorf(errors.KindUsage, "unknown network %q", id)
}

type RPCConfig struct {
	ConnectTimeoutMs int `ini:"connect_timeout_ms"`
	CallTimeoutMs    int `ini:"call_timeout_ms"`
}

type JournalConfig struct {
	Disabled bool `ini:"disabled"`
}

// LoadRPCConfig reads per-call network budgets from an .ini file.
// A missing file yields the defaults.
func LoadRPCConfig(path string) (*RPCConfig, error) {
	rpcCfg := &RPCConfig{
		ConnectTimeoutMs: DefaultConnectTimeoutMs,
		CallTimeoutMs:    DefaultCallTimeoutMs,
	}
	cfg, err := ini.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rpcCfg, nil
		}
		return nil, err
	}
	rpcSection := cfg.Section("rpc")
	if err := rpcSection.MapTo(rpcCfg); err != nil {
		return nil, err
	}
	return rpcCfg, nil
}

// LoadJournalConfig reads broadcast-journal tuning from the same .ini file.
func LoadJournalConfig(path string) (*JournalConfig, error) {
	journalCfg := &JournalConfig{}
	cfg, err := ini.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return journalCfg, nil
		}
		return nil, err
	}
	journalSection := cfg.Section("journal")
	if err := journalSection.MapTo(journalCfg); err != nil {
		return nil, err
	}
	return journalCfg, nil
}
